package near_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnisig/go-txbuilder/internal/txbuild/near"
)

func TestBase64BytesJSON(t *testing.T) {
	type record struct {
		Field near.Base64Bytes `json:"field"`
	}

	out, err := json.Marshal(record{Field: near.Base64Bytes("hello")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"aGVsbG8="}`, string(out))

	var in record
	require.NoError(t, json.Unmarshal(out, &in))
	assert.Equal(t, near.Base64Bytes("hello"), in.Field)
}

func TestBase64BytesRejectsGarbage(t *testing.T) {
	var b near.Base64Bytes
	require.Error(t, json.Unmarshal([]byte(`"not base64!!!"`), &b))
	require.Error(t, json.Unmarshal([]byte(`42`), &b))
}
