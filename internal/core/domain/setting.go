package domain

import "github.com/google/uuid"

// Setting is a named user preference holding an arbitrary JSON value.
type Setting struct {
	ID     string `json:"id" bson:"_id"`
	UserID string `json:"userId" bson:"user_id"`
	Name   string `json:"name" bson:"name"`
	Value  any    `json:"value" bson:"value"`
}

// NewSetting builds a setting.
func NewSetting(userID, name string, value any) (Setting, error) {
	if userID == "" {
		return Setting{}, NewValidationError("userId", "cannot be empty")
	}
	if name == "" {
		return Setting{}, NewValidationError("name", "cannot be empty")
	}
	return Setting{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Value:  value,
	}, nil
}

// SettingPatch is a partial update of a setting.
type SettingPatch struct {
	UserID Optional[string]
	Name   Optional[string]
	Value  Optional[any]
}

var settingProtected = []string{"id"}

// DecodeSettingPatch parses a raw JSON partial update. The kind of value is
// checked later against the stored setting, see CheckAgainst.
func DecodeSettingPatch(data []byte) (SettingPatch, error) {
	var p SettingPatch
	schema := patchSchema{
		entity:    "setting",
		protected: settingProtected,
		fields: map[string]fieldDecoder{
			"userId": stringField(&p.UserID),
			"name":   stringField(&p.Name),
			"value":  anyField(&p.Value),
		},
	}
	if err := schema.decode(data); err != nil {
		return SettingPatch{}, err
	}
	return p, p.Validate()
}

func (p SettingPatch) Validate() error {
	if err := requireNonEmpty("userId", p.UserID); err != nil {
		return err
	}
	return requireNonEmpty("name", p.Name)
}

// CheckAgainst rejects a new value whose JSON kind differs from the current one.
func (p SettingPatch) CheckAgainst(current Setting) error {
	if !p.Value.Set {
		return nil
	}
	want, got := ValueKind(current.Value), ValueKind(p.Value.Value)
	if want != got {
		return NewTypeMismatch("value", want, got)
	}
	return nil
}

// Apply merges p into s.
func (s Setting) Apply(p SettingPatch) Setting {
	s.UserID = p.UserID.Or(s.UserID)
	s.Name = p.Name.Or(s.Name)
	s.Value = p.Value.Or(s.Value)
	return s
}
