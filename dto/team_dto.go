package dto

// TeamWithUsernames is the /teams row with owner and manager ids resolved
// to usernames. Unresolved ids map to null.
type TeamWithUsernames struct {
	TeamID                 uint    `json:"teamId"`
	TeamName               string  `json:"teamName"`
	ProductOwnerUserID     *uint   `json:"productOwnerUserId"`
	ProjectManagerUserID   *uint   `json:"projectManagerUserId"`
	ProductOwnerUsername   *string `json:"productOwnerUsername"`
	ProjectManagerUsername *string `json:"projectManagerUsername"`
}
