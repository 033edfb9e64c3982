package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUID(t *testing.T) {
	id, err := ParseUUID("7cbb8cbf-6d5f-49ac-91a1-49e109ce1e7b")
	require.NoError(t, err)
	assert.Equal(t, "7cbb8cbf-6d5f-49ac-91a1-49e109ce1e7b", id.String())

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}
