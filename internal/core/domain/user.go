package domain

import "github.com/google/uuid"

// User is an account. Only the password hash is ever stored.
type User struct {
	ID             string `json:"id" bson:"_id"`
	UserName       string `json:"userName" bson:"user_name"`
	HashedPassword string `json:"-" bson:"hashed_password"`
	Email          string `json:"email" bson:"email"`
}

// NewUser builds a user from an already hashed password.
func NewUser(userName, hashedPassword, email string) (User, error) {
	if userName == "" {
		return User{}, NewValidationError("userName", "cannot be empty")
	}
	if hashedPassword == "" {
		return User{}, NewValidationError("hashedPassword", "cannot be empty")
	}
	if email == "" {
		return User{}, NewValidationError("email", "cannot be empty")
	}
	return User{
		ID:             uuid.NewString(),
		UserName:       userName,
		HashedPassword: hashedPassword,
		Email:          email,
	}, nil
}

// UserPatch is a partial update of a user. The password hash changes only
// through the dedicated password operation.
type UserPatch struct {
	UserName Optional[string]
	Email    Optional[string]
}

var userProtected = []string{"id", "hashedPassword"}

// DecodeUserPatch parses a raw JSON partial update.
func DecodeUserPatch(data []byte) (UserPatch, error) {
	var p UserPatch
	schema := patchSchema{
		entity:    "user",
		protected: userProtected,
		fields: map[string]fieldDecoder{
			"userName": stringField(&p.UserName),
			"email":    stringField(&p.Email),
		},
	}
	if err := schema.decode(data); err != nil {
		return UserPatch{}, err
	}
	return p, p.Validate()
}

func (p UserPatch) Validate() error {
	if err := requireNonEmpty("userName", p.UserName); err != nil {
		return err
	}
	return requireNonEmpty("email", p.Email)
}

// Apply merges p into u.
func (u User) Apply(p UserPatch) User {
	u.UserName = p.UserName.Or(u.UserName)
	u.Email = p.Email.Or(u.Email)
	return u
}

// WithPasswordHash returns a copy of u carrying a new hash.
func (u User) WithPasswordHash(hash string) User {
	u.HashedPassword = hash
	return u
}
