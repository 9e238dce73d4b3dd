package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTimerPatch(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		check   func(t *testing.T, p TimerPatch)
	}{
		{
			name: "empty object",
			body: `{}`,
			check: func(t *testing.T, p TimerPatch) {
				assert.False(t, p.Name.Set)
				assert.False(t, p.Duration.Set)
				assert.False(t, p.IntervalDuration.Set)
			},
		},
		{
			name: "all fields",
			body: `{"name":"Pasta","duration":600000,"intervalDuration":1000}`,
			check: func(t *testing.T, p TimerPatch) {
				assert.Equal(t, Some("Pasta"), p.Name)
				assert.Equal(t, Some(int64(600000)), p.Duration)
				assert.Equal(t, Some(int64(1000)), p.IntervalDuration)
			},
		},
		{name: "array body", body: `[1,2]`, wantErr: ErrTypeMismatch},
		{name: "null body", body: `null`, wantErr: ErrTypeMismatch},
		{name: "protected id", body: `{"id":"x"}`, wantErr: ErrProtectedField},
		{name: "protected running flag", body: `{"isRunning":true}`, wantErr: ErrProtectedField},
		{name: "unknown key", body: `{"colour":"red"}`, wantErr: ErrUnknownField},
		{name: "string duration", body: `{"duration":"10"}`, wantErr: ErrTypeMismatch},
		{name: "fractional duration", body: `{"duration":1.5}`, wantErr: ErrTypeMismatch},
		{name: "negative duration", body: `{"duration":-1}`, wantErr: ErrValidation},
		{name: "zero interval", body: `{"intervalDuration":0}`, wantErr: ErrValidation},
		{name: "empty name", body: `{"name":""}`, wantErr: ErrValidation},
		{name: "protected wins over unknown", body: `{"zzz":1,"id":"x"}`, wantErr: ErrProtectedField},
		{name: "unknown wins over type", body: `{"duration":"x","zzz":1}`, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeTimerPatch([]byte(tt.body))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestDecodePatch_ErrorDetails(t *testing.T) {
	_, err := DecodeTimerAlertPatch([]byte(`{"activationTime":"soon"}`))
	var tm *TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "activationTime", tm.Field)
	assert.Equal(t, KindInteger, tm.Expected)
	assert.Equal(t, KindString, tm.Actual)

	_, err = DecodeUserPatch([]byte(`{"hashedPassword":"x"}`))
	var pf *ProtectedFieldError
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, "user", pf.Entity)
	assert.Equal(t, "hashedPassword", pf.Field)

	_, err = DecodeSettingPatch([]byte(`{"colour":1}`))
	var uf *UnknownFieldError
	require.True(t, errors.As(err, &uf))
	assert.Equal(t, "colour", uf.Field)
}

func TestDecodeInventoryPatch_Items(t *testing.T) {
	p, err := DecodeInventoryPatch([]byte(`{"items":[{"id":"a"},{"id":"b"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []ItemRef{{ID: "a"}, {ID: "b"}}, p.Items.Value)

	p, err = DecodeInventoryPatch([]byte(`{"items":[]}`))
	require.NoError(t, err)
	assert.True(t, p.Items.Set)
	assert.Empty(t, p.Items.Value)

	_, err = DecodeInventoryPatch([]byte(`{"items":{"id":"a"}}`))
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = DecodeInventoryPatch([]byte(`{"items":["a"]}`))
	var tm *TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "items[0]", tm.Field)

	_, err = DecodeInventoryPatch([]byte(`{"items":[{"id":""}]}`))
	require.ErrorIs(t, err, ErrValidation)
}

func TestDecodeInventoryItemPatch(t *testing.T) {
	p, err := DecodeInventoryItemPatch([]byte(`{
		"object": {"name": "flour"},
		"unitCost": 1.10,
		"lastReorderDate": null,
		"deliveryDate": "2024-03-01T08:00:00Z",
		"currentQuantity": 3
	}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "flour"}, p.Object.Value)
	assert.True(t, p.UnitCost.Value.Equal(decimal.RequireFromString("1.1")))
	assert.True(t, p.LastReorderDate.Set)
	assert.Nil(t, p.LastReorderDate.Value)
	require.NotNil(t, p.DeliveryDate.Value)
	assert.True(t, p.DeliveryDate.Value.Equal(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3.0, p.CurrentQuantity.Value)

	tests := []struct {
		name string
		body string
		want error
	}{
		{"null object", `{"object":null}`, ErrTypeMismatch},
		{"array object", `{"object":[]}`, ErrTypeMismatch},
		{"null createdAt", `{"createdAt":null}`, ErrTypeMismatch},
		{"bad date", `{"deliveryDate":"tomorrow"}`, ErrTypeMismatch},
		{"string quantity", `{"currentQuantity":"3"}`, ErrTypeMismatch},
		{"protected id", `{"id":"x"}`, ErrProtectedField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInventoryItemPatch([]byte(tt.body))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValueKind(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, KindNull},
		{"x", KindString},
		{true, KindBoolean},
		{3, KindNumber},
		{2.5, KindNumber},
		{decimal.NewFromInt(1), KindNumber},
		{map[string]any{}, KindObject},
		{[]any{1}, KindArray},
		{time.Now(), KindDate},
		{(*int)(nil), KindNull},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValueKind(tt.in), "%#v", tt.in)
	}
}

func TestSettingPatch_CheckAgainst(t *testing.T) {
	current := Setting{ID: "s1", UserID: "u1", Name: "theme", Value: map[string]any{"dark": true}}

	p, err := DecodeSettingPatch([]byte(`{"value":{"dark":false}}`))
	require.NoError(t, err)
	require.NoError(t, p.CheckAgainst(current))
	assert.Equal(t, map[string]any{"dark": false}, current.Apply(p).Value)

	p, err = DecodeSettingPatch([]byte(`{"value":"dark"}`))
	require.NoError(t, err)
	require.ErrorIs(t, p.CheckAgainst(current), ErrTypeMismatch)

	p, err = DecodeSettingPatch([]byte(`{"name":"palette"}`))
	require.NoError(t, err)
	require.NoError(t, p.CheckAgainst(current))
}
