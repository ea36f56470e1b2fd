package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Run("accepts canonical form", func(t *testing.T) {
		want := uuid.New()

		got, err := ParseID(want.String())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	malformed := []string{
		"",
		"abc",
		"not-a-uuid-at-all",
		"12345678123412341234123456789012",
		"{" + uuid.New().String() + "}",
		"urn:uuid:" + uuid.New().String(),
		"zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",
	}
	for _, raw := range malformed {
		t.Run("rejects "+raw, func(t *testing.T) {
			id, err := ParseID(raw)

			require.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Equal(t, "Invalid UUID string: "+raw, err.Error())
		})
	}
}

func TestBaseEntity_Stamp(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("assigns id and creation time once", func(t *testing.T) {
		var e BaseEntity
		assert.True(t, e.IsNew())

		e.Stamp(now)
		id := e.ID

		assert.False(t, e.IsNew())
		assert.Equal(t, now, e.GetCreatedAt())
		assert.Nil(t, e.GetModifiedAt())

		e.Stamp(now.Add(time.Hour))
		assert.Equal(t, id, e.GetID())
		assert.Equal(t, now, e.GetCreatedAt())
	})

	t.Run("touch sets modification time", func(t *testing.T) {
		var e BaseEntity
		e.Stamp(now)

		e.Touch(now.Add(time.Minute))

		require.NotNil(t, e.GetModifiedAt())
		assert.Equal(t, now.Add(time.Minute), *e.GetModifiedAt())
		assert.Equal(t, now, e.CreatedAt)
	})
}
