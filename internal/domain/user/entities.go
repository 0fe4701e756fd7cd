package user

// User is a portal operator. The password never round-trips through this
// layer: it is excluded from every response we serve and only travels on
// create/update via Input.
type User struct {
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	Password string `json:"-"`
	UserRole string `json:"userRole"`
	Name     string `json:"name"`
}

// Input is the create/update payload sent to the remote API.
type Input struct {
	UserID       int    `json:"userId,omitempty"`
	UserName     string `json:"userName"`
	UserPassword string `json:"userPassword"`
	UserRole     string `json:"userRole"`
	Name         string `json:"name"`
}
