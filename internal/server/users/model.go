package users

// AnonymousUsername is the distinguished owner namespace used when no
// identity is presented. Its directory always exists under the upload root.
const AnonymousUsername = "anonymous"

// CredentialsFileName is the per-user record file under the user's directory.
const CredentialsFileName = ".credentials"

// User is a persisted credential record. The JSON field names are the wire
// format of the credential file.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
