// README: Diagnostic report returned by the /test endpoint.
package diagnostic

const (
	BackendRunning = "✅ Running"

	DatabaseNotAvailable = "❌ Not Available"
	DatabaseAvailable    = "✅ Available"
	DatabaseWorking      = "✅ Connected & Working"
	DatabaseErrorPrefix  = "⚠️ Connected but Error: "

	ConnectionConnected    = "Connected"
	ConnectionNotConnected = "Not Connected"

	SettingSet    = "✅ Set"
	SettingNotSet = "❌ Not Set"
)

const (
	maxCollections = 10
	maxErrorRunes  = 50
)

type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
