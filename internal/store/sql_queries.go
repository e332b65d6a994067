package store

const (
	usersTable     = "users"
	rolesTable     = "roles"
	userRolesTable = "user_roles"
)

// userColumns is the column order shared by every user SELECT and by scanUser.
var userColumns = []string{
	"id",
	"email",
	"normalized_email",
	"username",
	"password_hash",
	"email_confirmed",
	"security_stamp",
	"created_at",
	"updated_at",
}

var roleColumns = []string{
	"id",
	"name",
	"normalized_name",
}
