package organizations

const (
	// FlagID is a flag representing an organization id
	FlagID = "id"
	// FlagBody is a flag representing an organization JSON payload
	FlagBody = "body"
	// FlagPerPage is a flag representing the number of organizations per page
	FlagPerPage = "per-page"
	// FlagPage is a flag representing the zero-indexed page to list
	FlagPage = "page"
	// FlagAccessToken is a flag representing a pre-obtained access token
	FlagAccessToken = "access-token"
)
