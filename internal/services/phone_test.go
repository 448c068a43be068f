package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhone_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *int64
		wantErr bool
	}{
		{name: "number", body: `{"phone":5551234}`, want: ptr(int64(5551234))},
		{name: "numeric string", body: `{"phone":"5551234"}`, want: ptr(int64(5551234))},
		{name: "padded string", body: `{"phone":" 5551234 "}`, want: ptr(int64(5551234))},
		{name: "exponent", body: `{"phone":5.551234e6}`, want: ptr(int64(5551234))},
		{name: "empty string", body: `{"phone":""}`, want: ptr(int64(0))},
		{name: "null", body: `{"phone":null}`},
		{name: "absent", body: `{}`},
		{name: "letters", body: `{"phone":"call me"}`, wantErr: true},
		{name: "fraction", body: `{"phone":"555.5"}`, wantErr: true},
		{name: "bool", body: `{"phone":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fields FormFields
			err := json.Unmarshal([]byte(tt.body), &fields)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields.Phone.Int64())
		})
	}
}

func TestPhone_UnmarshalParam(t *testing.T) {
	var p Phone
	require.NoError(t, p.UnmarshalParam("5551234"))
	assert.Equal(t, Phone(5551234), p)

	assert.Error(t, p.UnmarshalParam("abc"))
}

func TestFormService_StringPhone(t *testing.T) {
	svc := NewFormService(newMemFormStore())
	ctx := context.Background()

	var add FormFields
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@b.com","phone":"5551234"}`), &add))
	created, err := svc.Add(ctx, add)
	require.NoError(t, err)
	require.NotNil(t, created.Phone)
	assert.Equal(t, int64(5551234), *created.Phone)

	var patch FormFields
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"5559999"}`), &patch))
	updated, err := svc.Update(ctx, created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, int64(5559999), *updated.Phone)
	assert.Equal(t, "a@b.com", *updated.Email)
}
