package dbm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ticktac-project/tchecker-go/dbm"
)

func TestEqual_ReflexiveAndSensitiveToBounds(t *testing.T) {
	d1, err := dbm.UniversalPositive(2)
	require.NoError(t, err)
	d2 := d1.Clone()
	require.True(t, d1.Equal(d2))

	_, err = d2.Constrain(1, 0, dbm.Le, 5)
	require.NoError(t, err)
	require.False(t, d1.Equal(d2))
}

func TestLessEq_WidenedZoneIncludesNarrower(t *testing.T) {
	narrow, err := dbm.Zero(2)
	require.NoError(t, err)
	_, err = narrow.Constrain(1, 0, dbm.Le, 5)
	require.NoError(t, err)

	wide, err := dbm.Zero(2)
	require.NoError(t, err)
	wide.OpenUp()

	require.True(t, narrow.LessEq(wide))
	require.False(t, wide.LessEq(narrow))
}
