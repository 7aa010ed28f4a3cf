package models

type Role string

const (
	RoleMigrant Role = "migrant"
	RoleDoctor  Role = "doctor"
	RoleGovt    Role = "govt"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleMigrant, RoleDoctor, RoleGovt, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email,omitempty"`
	Phone     string `bson:"phone,omitempty"`
	Password  string `bson:"password,omitempty"`
	Role      Role   `bson:"role"`
	Language  string `bson:"language,omitempty"`
	HealthID  string `bson:"healthId,omitempty"`
	TimeModel `bson:",inline"`
}
