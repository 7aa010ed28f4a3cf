package responses

type Login struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Signup struct {
	User *User `json:"user"`
}
