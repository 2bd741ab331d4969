// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"
)

func TestValidate(t *testing.T) {
	addr := ids.GenerateTestShortID().String()

	tests := []struct {
		name        string
		config      Config
		expectedErr error
	}{
		{
			name: "valid",
			config: Config{
				HTTPAddr:   ":9650",
				Quorum:     2,
				Validators: []string{addr},
			},
		},
		{
			name: "zero quorum",
			config: Config{
				Quorum:     0,
				Validators: []string{addr},
			},
			expectedErr: errZeroQuorum,
		},
		{
			name: "no validators",
			config: Config{
				Quorum: 1,
			},
			expectedErr: errNoValidators,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Validate()
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestValidateRejectsBadAddress(t *testing.T) {
	require := require.New(t)

	config := Config{
		Quorum:     1,
		Validators: []string{"not-an-address"},
	}
	require.Error(config.Validate())
}

func TestValidatorSet(t *testing.T) {
	require := require.New(t)

	v1 := ids.GenerateTestShortID()
	v2 := ids.GenerateTestShortID()

	config := Config{
		Quorum:     2,
		Validators: []string{v1.String(), v2.String()},
	}
	set, err := config.ValidatorSet()
	require.NoError(err)
	require.Equal(2, set.Len())
	require.True(set.IsValidator(v1))
	require.True(set.IsValidator(v2))
	require.False(set.IsValidator(ids.GenerateTestShortID()))
}

func TestDefault(t *testing.T) {
	require := require.New(t)

	config := Default()
	require.Equal(":9650", config.HTTPAddr)
	require.Equal(uint32(2), config.Quorum)
}
