package hsluv

import (
	"encoding/json"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// snapshotDelta is the tolerance used against the reference snapshot.
const snapshotDelta = 1e-8

type snapshotEntry struct {
	RGB   [3]float64 `json:"rgb"`
	XYZ   [3]float64 `json:"xyz"`
	LUV   [3]float64 `json:"luv"`
	LCH   [3]float64 `json:"lch"`
	HSLuv [3]float64 `json:"hsluv"`
	HPLuv [3]float64 `json:"hpluv"`
}

// loadSnapshot reads the hsluv reference snapshot (revision 4), which maps
// every "#rgb"-style 4096-color sample to its value in each space.
func loadSnapshot(t *testing.T) (map[string]snapshotEntry, []string) {
	t.Helper()

	data, err := os.ReadFile("testdata/hsluv-snapshot-rev4.json")
	require.NoError(t, err)

	var snapshot map[string]snapshotEntry
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Len(t, snapshot, 4096)

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return snapshot, keys
}

func checkTuple(t *testing.T, hex, what string, want, got [3]float64) {
	t.Helper()
	for i := range want {
		if diff := want[i] - got[i]; diff > snapshotDelta || diff < -snapshotDelta {
			t.Errorf("%s %s[%d]: want %v, got %v", hex, what, i, want[i], got[i])
		}
	}
}

func TestSnapshotForward(t *testing.T) {
	snapshot, keys := loadSnapshot(t)
	for _, hex := range keys {
		want := snapshot[hex]

		xyz := RGB{Red: want.RGB[0], Green: want.RGB[1], Blue: want.RGB[2]}.XYZ()
		checkTuple(t, hex, "xyz", want.XYZ, tuple(xyz.Values()))

		luv := xyz.LUV()
		checkTuple(t, hex, "luv", want.LUV, tuple(luv.Values()))

		lch := luv.LCH()
		checkTuple(t, hex, "lch", want.LCH, tuple(lch.Values()))

		ref := LCH{L: want.LCH[0], C: want.LCH[1], H: want.LCH[2]}
		checkTuple(t, hex, "hsluv", want.HSLuv, tuple(ref.HSLuv().Values()))
		checkTuple(t, hex, "hpluv", want.HPLuv, tuple(ref.HPLuv().Values()))
	}
}

func TestSnapshotInverse(t *testing.T) {
	snapshot, keys := loadSnapshot(t)
	for _, hex := range keys {
		want := snapshot[hex]

		hsl := HSLuv{H: want.HSLuv[0], S: want.HSLuv[1], L: want.HSLuv[2]}
		checkTuple(t, hex, "hsluv->lch", want.LCH, tuple(hsl.LCH().Values()))

		hpl := HPLuv{H: want.HPLuv[0], S: want.HPLuv[1], L: want.HPLuv[2]}
		checkTuple(t, hex, "hpluv->lch", want.LCH, tuple(hpl.LCH().Values()))

		luv := LCH{L: want.LCH[0], C: want.LCH[1], H: want.LCH[2]}.LUV()
		checkTuple(t, hex, "lch->luv", want.LUV, tuple(luv.Values()))

		xyz := luv.XYZ()
		checkTuple(t, hex, "luv->xyz", want.XYZ, tuple(xyz.Values()))

		checkTuple(t, hex, "xyz->rgb", want.RGB, tuple(xyz.RGB().Values()))
	}
}

func TestSnapshotHex(t *testing.T) {
	snapshot, keys := loadSnapshot(t)
	for _, hex := range keys {
		want := snapshot[hex]

		rgb, err := RGBFromHex(hex)
		require.NoError(t, err)
		checkTuple(t, hex, "rgb", want.RGB, tuple(rgb.Values()))

		hsl := HSLuv{H: want.HSLuv[0], S: want.HSLuv[1], L: want.HSLuv[2]}
		if got := hsl.Hex(); got != hex {
			t.Errorf("%s: HSLuv.Hex() = %s", hex, got)
		}
		hpl := HPLuv{H: want.HPLuv[0], S: want.HPLuv[1], L: want.HPLuv[2]}
		if got := hpl.Hex(); got != hex {
			t.Errorf("%s: HPLuv.Hex() = %s", hex, got)
		}
	}
}
