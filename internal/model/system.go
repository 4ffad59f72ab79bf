package model

// VersionInfo contains version information for the application and the
// preference database schema.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	DbVersion  string `json:"db_version"`
	DataFile   string `json:"data_file"`
}
