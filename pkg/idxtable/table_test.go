package idxtable

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangekit/pkg/array"
	"github.com/henderiw/rangekit/pkg/ranges"
	"github.com/henderiw/rangekit/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initEntries = map[int64]string{
	0:   "a",
	1:   "b",
	999: "c",
}

func TestNewTable(t *testing.T) {
	cases := map[string]struct {
		size            int64
		initEntries     map[int64]string
		validation      ValidationFn
		expectedEntries int
		expectedErr     bool
	}{

		"NewWithoutInitEntries": {
			size:            1000,
			initEntries:     nil,
			expectedEntries: 0,
		},
		"NewWithInitEntries": {
			size:            1000,
			initEntries:     initEntries,
			validation:      func(id int64) error { return nil },
			expectedEntries: 3,
		},
		"NewErrorMaxEntries": {
			size:        100,
			initEntries: initEntries,
			expectedErr: true,
		},
		"NewErrorValidation": {
			size:        999,
			initEntries: initEntries,
			validation: func(id int64) error {
				if id == 5000 {
					return errors.New("vaidation")
				}
				return nil
			},
			expectedErr: true,
		},
		"NewErrorNegativeSize": {
			size:        -1,
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, tc.validation)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			} else {
				assert.NoError(t, err)
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(r.GetAll()))
			}
		})
	}
}

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		size              int64
		initEntries       map[int64]string
		newSuccessEntries map[int64]string
		newFailedEntries  map[int64]string
		expectedEntries   int
	}{

		"Normal": {
			size:        1000,
			initEntries: initEntries,
			newSuccessEntries: map[int64]string{
				10: "a",
				11: "b",
			},
			newFailedEntries: map[int64]string{
				1000: "x",
				-1:   "y",
				0:    "z",
			},
			expectedEntries: 5,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, nil)
			assert.NoError(t, err)

			for id, d := range tc.newSuccessEntries {
				err := r.Claim(id, d)
				assert.NoError(t, err)

			}
			for id, d := range tc.newFailedEntries {
				err := r.Claim(id, d)
				assert.Error(t, err)
			}
			// check table
			for id := range tc.initEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting initEntry: %d\n", name, id)
				}
			}
			for id, d := range tc.newSuccessEntries {
				got, err := r.Get(id)
				assert.NoError(t, err)
				assert.Equal(t, d, got)
			}
			if r.Has(1000) || r.Has(-1) {
				t.Errorf("%s no expecting failed claim entries\n", name)
			}
			if got, _ := r.Get(0); got != "a" {
				t.Errorf("%s: failed claim overwrote entry 0: %q\n", name, got)
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(r.GetAll()))
			}
		})
	}
}

func TestRelease(t *testing.T) {
	cases := map[string]struct {
		size                 int64
		initEntries          map[int64]string
		newSuccessEntries    map[int64]string
		expectedEntries      int
		deleteSuccessEntries []int64
		deleteFailedEntries  []int64
	}{

		"Normal": {
			size:        1000,
			initEntries: initEntries,
			newSuccessEntries: map[int64]string{
				10: "a",
				11: "b",
			},
			deleteSuccessEntries: []int64{0, 10, 11},
			deleteFailedEntries:  []int64{20, 21},

			expectedEntries: 2,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, nil)
			assert.NoError(t, err)

			for id, d := range tc.newSuccessEntries {
				err := r.Claim(id, d)
				assert.NoError(t, err)
			}
			for _, id := range tc.deleteSuccessEntries {
				err := r.Release(id)
				assert.NoError(t, err)
			}
			// releasing a free id is not an error
			for _, id := range tc.deleteFailedEntries {
				err := r.Release(id)
				assert.NoError(t, err)
			}
			for _, id := range tc.deleteSuccessEntries {
				_, err := r.Get(id)
				assert.Error(t, err)
				if r.Has(id) {
					t.Errorf("%s not expecting deleted claim entry: %d\n", name, id)
				}
				if !r.IsFree(id) {
					t.Errorf("%s expecting released entry to be free: %d\n", name, id)
				}
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(r.GetAll()))
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	r, err := NewTable[string](1000, initEntries, nil)
	require.NoError(t, err)

	assert.NoError(t, r.Update(1, "x"))
	got, err := r.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, "x", got)

	assert.Error(t, r.Update(2, "x"))
	assert.Error(t, r.Update(1000, "x"))
}

func TestIterate(t *testing.T) {
	cases := map[string]struct {
		size        int64
		initEntries map[int64]string
		keys        []int64
		consecutive []bool
	}{

		"Normal": {
			size:        1000,
			initEntries: initEntries,
			keys:        []int64{0, 1, 999},
			consecutive: []bool{false, true, false},
		},
		"None": {
			size:        1000,
			initEntries: nil,
			keys:        []int64{},
			consecutive: []bool{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, nil)
			assert.NoError(t, err)

			keys := []int64{}
			consecutive := []bool{}
			i := r.Iterate()
			for i.Next() {
				keys = append(keys, i.ID())
				consecutive = append(consecutive, i.IsConsecutive())
				assert.Equal(t, tc.initEntries[i.ID()], i.Value())
			}
			if diff := cmp.Diff(tc.keys, keys); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
			if diff := cmp.Diff(tc.consecutive, consecutive); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestIterateFree(t *testing.T) {
	r, err := NewTable[string](5, map[int64]string{1: "a", 3: "b"}, nil)
	require.NoError(t, err)

	keys := []int64{}
	i := r.IterateFree()
	for i.Next() {
		keys = append(keys, i.ID())
	}
	if diff := cmp.Diff([]int64{0, 2, 4}, keys); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	id, err := r.FindFree()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), id)
}

func TestClaimDynamic(t *testing.T) {
	r, err := NewTable[string](3, map[int64]string{1: "a"}, func(id int64) error {
		if id == 0 {
			return errors.New("reserved")
		}
		return nil
	})
	require.NoError(t, err)

	id, err := r.ClaimDynamic("x")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), id)

	_, err = r.ClaimDynamic("y")
	assert.ErrorIs(t, err, ErrNoFreeEntry)
}

func TestClaimRange(t *testing.T) {
	cases := map[string]struct {
		size            int64
		initEntries     map[int64]string
		start           int64
		total           int64
		expectedEntries int
		expectedErr     bool
	}{

		"Normal": {
			size:            10,
			initEntries:     nil,
			start:           5,
			total:           5,
			expectedEntries: 5,
		},
		"ErrorMax": {
			size:            10,
			initEntries:     nil,
			start:           5,
			total:           6,
			expectedEntries: 0,
			expectedErr:     true,
		},
		"ErrorOverlap": {
			size:            1000,
			initEntries:     initEntries,
			start:           0,
			total:           5,
			expectedEntries: 3,
			expectedErr:     true,
		},
		"ErrorSize": {
			size:        10,
			start:       0,
			total:       0,
			expectedErr: true,
		},
		"ErrorOverflow": {
			size:        10,
			start:       2,
			total:       math.MaxInt64,
			expectedErr: true,
		},
		"ErrorNegativeStart": {
			size:        10,
			start:       -1,
			total:       2,
			expectedErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, nil)
			assert.NoError(t, err)

			err = r.ClaimRange(tc.start, tc.total, "a")
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			for id := tc.start; id < tc.start+tc.total; id++ {
				if !r.Has(id) {
					t.Errorf("%s expecting entry: %d\n", name, id)
				}
			}

			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(r.GetAll()))
			}
		})
	}
}

func TestClaimSize(t *testing.T) {
	cases := map[string]struct {
		size            int64
		initEntries     map[int64]string
		total           int64
		expectedEntries int
		expectedErr     bool
	}{

		"Normal": {
			size:            1000,
			total:           1000,
			expectedEntries: 1000,
		},
		"WithInitEntries": {
			size:            1000,
			initEntries:     initEntries,
			total:           10,
			expectedEntries: 13,
		},
		"ErrorMax": {
			size:            10,
			total:           11,
			expectedEntries: 0,
			expectedErr:     true,
		},
		"ErrorNotEnoughFree": {
			size:        1000,
			initEntries: initEntries,
			total:       998,
			expectedErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, nil)
			assert.NoError(t, err)

			err = r.ClaimSize(tc.total, "a")
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(r.GetAll()))
			}
		})
	}
}

func TestEntries(t *testing.T) {
	r, err := NewTable[string](1000, initEntries, nil)
	require.NoError(t, err)

	entries := r.Entries()
	assert.Equal(t, 3, entries.Len())
	assert.Equal(t, 3, ranges.Len[int, Entry[string]](entries))
	assert.Equal(t, entries.End(), entries.AfterN(entries.Start(), 3))
	assert.Equal(t, entries.Start(), entries.BeforeN(entries.End(), 3))
	assert.Equal(t, int64(999), entries.At(entries.Before(entries.End())).ID())

	// the snapshot does not follow later changes
	require.NoError(t, r.Claim(5, "d"))
	assert.Equal(t, 3, entries.Len())

	dest := array.New[Entry[string]](entries.Len())
	end := rng.CopyIf(entries, dest, dest.Start(), func(e Entry[string]) bool {
		return e.Data() != "b"
	})
	ids := []int64{}
	for _, e := range dest.Prefix(end) {
		ids = append(ids, e.ID())
	}
	if diff := cmp.Diff([]int64{0, 999}, ids); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	_, err = ranges.Checked(func() Entry[string] { return entries.At(entries.End()) })
	assert.ErrorIs(t, err, ranges.ErrOutOfRange)
}

func TestFindFreeRange(t *testing.T) {
	cases := map[string]struct {
		start       int64
		size        int64
		expectedIDs []int64
		expectedErr string
	}{
		"Normal": {
			start:       7,
			size:        3,
			expectedIDs: []int64{7, 8, 9},
		},
		"InUse": {
			start:       0,
			size:        3,
			expectedErr: "entry 1 in use in range: start: 0, end 2",
		},
		"NegativeStart": {
			start:       -1,
			size:        2,
			expectedErr: "start -1 cannot be negative",
		},
		"StartTooBig": {
			start:       10,
			size:        1,
			expectedErr: "start 10 is bigger then max allowed entries: 10",
		},
		"EndTooBig": {
			start:       8,
			size:        3,
			expectedErr: "end of range start 8 size 3 is bigger then max allowed entries: 10",
		},
		"SizeOverflow": {
			start:       2,
			size:        math.MaxInt64,
			expectedErr: "end of range start 2 size 9223372036854775807 is bigger then max allowed entries: 10",
		},
	}
	r, err := NewTable[string](10, map[int64]string{1: "a"}, nil)
	require.NoError(t, err)

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got map[int64]string
			require.NotPanics(t, func() {
				got, err = r.FindFreeRange(tc.start, tc.size)
			})
			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			ids := []int64{}
			for id := range got {
				ids = append(ids, id)
			}
			assert.ElementsMatch(t, tc.expectedIDs, ids)
		})
	}
	assert.Error(t, r.ClaimRange(2, math.MaxInt64, "x"))
	assert.Equal(t, 1, r.Count())
}
