package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSource(t *testing.T) {
	workerID, err := DecodeSource("worker-66f1a2b3c4d5e6f7a8b9c0d1")
	assert.NoError(t, err)
	assert.Equal(t, "66f1a2b3c4d5e6f7a8b9c0d1", workerID)
}

func TestDecodeSourceMalformed(t *testing.T) {
	for _, id := range []string{"", "worker-", "cell-abc", "66f1a2b3", "workerx-1"} {
		_, err := DecodeSource(id)
		var malformed *MalformedIdentifierError
		assert.True(t, errors.As(err, &malformed), "id %q should be malformed", id)
	}
}

func TestDecodeTarget(t *testing.T) {
	resourceID, date, err := DecodeTarget("cell-m0001-2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, "m0001", resourceID)
	assert.Equal(t, DateKey("2026-09-01"), date)
}

func TestDecodeTargetResourceIDWithDashes(t *testing.T) {
	// 機台 id 自己可以含 '-'，日期一定是固定長度尾碼
	resourceID, date, err := DecodeTarget("cell-press-line-2-2026-09-04")
	assert.NoError(t, err)
	assert.Equal(t, "press-line-2", resourceID)
	assert.Equal(t, DateKey("2026-09-04"), date)
}

func TestDecodeTargetMalformed(t *testing.T) {
	for _, id := range []string{
		"",
		"cell-",
		"cell-2026-09-01",          // missing resource component
		"worker-m1-2026-09-01",     // wrong prefix
		"cell-m1-2026-99-99",       // invalid date
		"cell-m1x2026-09-01",       // no separator before date
		"cell-m1-26-09-01",         // date too short
	} {
		_, _, err := DecodeTarget(id)
		var malformed *MalformedIdentifierError
		assert.True(t, errors.As(err, &malformed), "id %q should be malformed", id)
	}
}

func TestEncodeDecodeSymmetry(t *testing.T) {
	workerID, err := DecodeSource(EncodeSource("w42"))
	assert.NoError(t, err)
	assert.Equal(t, "w42", workerID)

	resourceID, date, err := DecodeTarget(EncodeTarget("m7", "2026-09-03"))
	assert.NoError(t, err)
	assert.Equal(t, "m7", resourceID)
	assert.Equal(t, DateKey("2026-09-03"), date)
}
