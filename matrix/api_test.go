// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
	"github.com/stretchr/testify/require"
)

func TestFacades(t *testing.T) {
	z, err := matrix.NewZeros(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0, 0}}, z.Rows())

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0}, {0, 1}}, id.Rows())

	like, err := matrix.IdentityLike(MustNew(t, 3, false))
	require.NoError(t, err)
	require.True(t, like.Equal(MustNew(t, 3, true)))
	_, err = matrix.IdentityLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.Nil(t, matrix.CloneMatrix(nil))
	require.True(t, matrix.CloneMatrix(id).Equal(id))

	sum, err := matrix.Sum(id, id)
	require.NoError(t, err)
	diff, err := matrix.Diff(sum, id)
	require.NoError(t, err)
	require.True(t, diff.Equal(id))

	det, err := matrix.Det(sum)
	require.NoError(t, err)
	require.Equal(t, 4, det)
	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
