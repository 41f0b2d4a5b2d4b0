// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dts

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *BootInfo {
	t.Helper()
	boot, err := ParseDocument([]byte(src))
	require.NoError(t, err)
	require.NotNil(t, boot)
	return boot
}

func TestParseDocument_MinimalRoot(t *testing.T) {
	boot := mustParse(t, `/dts-v1/; / {};`)
	require.NotNil(t, boot.Root)
	assert.Equal(t, "/", boot.Root.Name)
	assert.Equal(t, 0, boot.Root.Properties.Len())
	assert.Equal(t, 0, boot.Root.Children.Len())
	assert.Equal(t, uint32(0), boot.BootCPUIDPhys)
}

func TestParseDocument_MissingMarker(t *testing.T) {
	_, err := ParseDocument([]byte(`/ {};`))
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, SyntaxError, perr.Kind)
}

// TestParseDocument_CellLiteral covers scenario S2: "cell_prop = < 1 2 10 >;".
func TestParseDocument_CellLiteral(t *testing.T) {
	boot := mustParse(t, `/dts-v1/; / { cell_prop = < 1 2 10 >; };`)
	prop, ok := boot.Root.Properties.Get("cell_prop")
	require.True(t, ok)
	require.Len(t, prop.Value, 1)
	item := prop.Value[0]
	require.Equal(t, DataCells, item.Kind)
	require.Len(t, item.Cells, 3)
	assert.Equal(t, []Cell{{Value: 1}, {Value: 2}, {Value: 10}}, item.Cells)
}

// TestParseDocument_EscapedString covers scenario S5.
func TestParseDocument_EscapedString(t *testing.T) {
	boot := mustParse(t, `/dts-v1/; / { s = "\x7f\0stuffstuff\t\t\t\n\n\n"; };`)
	prop, ok := boot.Root.Properties.Get("s")
	require.True(t, ok)
	require.Len(t, prop.Value, 1)
	want := []byte{0x7f, 0x00, 's', 't', 'u', 'f', 'f', 's', 't', 'u', 'f', 'f', '\t', '\t', '\t', '\n', '\n', '\n'}
	assert.Equal(t, want, prop.Value[0].Str)
}

func TestParseDocument_ByteArray(t *testing.T) {
	boot := mustParse(t, `/dts-v1/; / { b = [12 34 56]; c = [123456]; };`)
	b, _ := boot.Root.Properties.Get("b")
	c, _ := boot.Root.Properties.Get("c")
	assert.Equal(t, []byte{0x12, 0x34, 0x56}, b.Value[0].Bytes)
	assert.Equal(t, b.Value[0].Bytes, c.Value[0].Bytes)
}

func TestParseDocument_ByteArrayOddDigitsRejected(t *testing.T) {
	_, err := ParseDocument([]byte(`/dts-v1/; / { b = [123]; };`))
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, SyntaxError, perr.Kind)
}

func TestParseDocument_Reference(t *testing.T) {
	boot := mustParse(t, `/dts-v1/; / { r = &{/top}; cells = < &foo 1 >; };`)
	r, _ := boot.Root.Properties.Get("r")
	require.Equal(t, DataReference, r.Value[0].Kind)
	assert.Equal(t, RefPath, r.Value[0].Ref.Kind)
	assert.Equal(t, "/top", r.Value[0].Ref.Value)

	cells, _ := boot.Root.Properties.Get("cells")
	require.Len(t, cells.Value[0].Cells, 2)
	assert.Equal(t, RefLabel, cells.Value[0].Cells[0].Ref.Kind)
	assert.Equal(t, "foo", cells.Value[0].Cells[0].Ref.Value)
	assert.Equal(t, uint64(1), cells.Value[0].Cells[1].Value)
}

func TestParseDocument_MemReserveAndAmendment(t *testing.T) {
	boot := mustParse(t, `
/dts-v1/;
/memreserve/ 0x1000 0x2000;
/ {
    top: top {
        bar: bar {
            baz = <1>;
        };
    };
};
&bar {
    baz = <2>;
};
`)
	require.Len(t, boot.ReserveInfo, 1)
	assert.Equal(t, uint64(0x1000), boot.ReserveInfo[0].Address)
	assert.Equal(t, uint64(0x2000), boot.ReserveInfo[0].Size)
	require.Len(t, boot.Amendments, 1)
	assert.Equal(t, RefLabel, boot.Amendments[0].NameRef.Kind)
	assert.Equal(t, "bar", boot.Amendments[0].NameRef.Value)
}

func TestParseDocument_DeleteDirectives(t *testing.T) {
	boot := mustParse(t, `
/dts-v1/;
/ {
    child {
        prop = <1>;
        /delete-property/ other;
    };
};
/delete-node/ &nonexistentisfineatparsetime;
`)
	child, ok := boot.Root.Children.Get("child")
	require.True(t, ok)
	other, ok := child.Properties.Get("other")
	require.True(t, ok)
	assert.Equal(t, Deleted, other.State)
	require.Len(t, boot.Amendments, 1)
	assert.Equal(t, Deleted, boot.Amendments[0].State)
}

// TestParseDocument_CommentTransparency asserts that inserting comments
// between tokens never changes the parsed structure.
func TestParseDocument_CommentTransparency(t *testing.T) {
	plain := mustParse(t, `/dts-v1/; / { p = <1 2>; };`)
	commented := mustParse(t, `
/* leading */ /dts-v1/; // trailing
/ /* node */ {
    p /* prop */ = < 1 /* one */ 2 > ; // done
};
`)
	plainProp, _ := plain.Root.Properties.Get("p")
	commentedProp, _ := commented.Root.Properties.Get("p")
	if diff := cmp.Diff(plainProp.Value, commentedProp.Value); diff != "" {
		t.Errorf("property value mismatch (-plain +commented):\n%s", diff)
	}
}

// TestNumericRadixRoundTrip covers the testable property that hex,
// octal, and decimal spellings of the same value parse identically,
// across representative magnitudes.
func TestNumericRadixRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 7, 8, 9, 15, 16, 255, 256}
	for _, v := range values {
		v := v
		t.Run(fmt.Sprintf("%d", v), func(t *testing.T) {
			dec := fmt.Sprintf("/dts-v1/; / { p = < %d >; };", v)
			hex := fmt.Sprintf("/dts-v1/; / { p = < 0x%x >; };", v)
			oct := fmt.Sprintf("/dts-v1/; / { p = < 0%o >; };", v)
			bd := mustParse(t, dec)
			bh := mustParse(t, hex)
			bo := mustParse(t, oct)
			pd, _ := bd.Root.Properties.Get("p")
			ph, _ := bh.Root.Properties.Get("p")
			po, _ := bo.Root.Properties.Get("p")
			assert.Equal(t, v, pd.Value[0].Cells[0].Value)
			assert.Equal(t, v, ph.Value[0].Cells[0].Value)
			assert.Equal(t, v, po.Value[0].Cells[0].Value)
		})
	}
}

func TestNumericOverflow(t *testing.T) {
	p := &parser{src: []byte("0x100")}
	_, err := p.parseUint(8)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, NumericOverflow, perr.Kind)
}

// TestEscapeClosure exercises every byte value 0x00-0x7f through an
// octal escape, confirming each round-trips to the same byte, and
// confirms 0x80 is rejected via \xHH (the hex escape's accepted range
// stops at 0x7f).
func TestEscapeClosure(t *testing.T) {
	for b := 0; b <= 0x7f; b++ {
		b := b
		t.Run(fmt.Sprintf("0x%02x", b), func(t *testing.T) {
			src := fmt.Sprintf(`/dts-v1/; / { s = "\%o"; };`, b)
			boot := mustParse(t, src)
			prop, _ := boot.Root.Properties.Get("s")
			require.Len(t, prop.Value[0].Str, 1)
			assert.Equal(t, byte(b), prop.Value[0].Str[0])
		})
	}
	_, err := ParseDocument([]byte(`/dts-v1/; / { s = "\x80"; };`))
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, EscapeOutOfRange, perr.Kind)
}

func TestOrderPreservation(t *testing.T) {
	boot := mustParse(t, `/dts-v1/; / { z = <1>; a = <2>; m = <3>; };`)
	var names []string
	for _, p := range boot.Root.Properties.All() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestPropertySetOverwritesInPlace(t *testing.T) {
	boot := mustParse(t, `/dts-v1/; / { a = <1>; b = <2>; a = <3>; };`)
	var names []string
	for _, p := range boot.Root.Properties.All() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)
	a, _ := boot.Root.Properties.Get("a")
	assert.Equal(t, uint64(3), a.Value[0].Cells[0].Value)
}
