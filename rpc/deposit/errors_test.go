package deposit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFaultError(t *testing.T) {
	require.NoError(t, FaultError(""))

	for _, e := range knownErrors {
		exc := "at instruction 1234 (THROW): unhandled exception: \"" + e.Error() + "\""
		err := FaultError(exc)
		require.ErrorIs(t, err, e)
		require.Contains(t, err.Error(), exc)

		require.ErrorIs(t, FaultError(e.Error()), e)
	}

	for _, exc := range []string{
		"at instruction 1 (ABORT): ABORT",
		"at instruction 7 (THROW): unhandled exception: \"committee witness check failed\"",
		"at instruction 7 (THROW): unhandled exception: \"invalid account balance\"",
		"at instruction 7 (THROW): unhandled exception: \"token is not a receiver of updates\"",
		"invalid account 0x01",
	} {
		err := FaultError(exc)
		require.Error(t, err, exc)
		for _, e := range knownErrors {
			require.False(t, errors.Is(err, e), exc)
		}
	}
}
