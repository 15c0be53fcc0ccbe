package models

// DeliverySummary is the final hand-off record for the project
type DeliverySummary struct {
	ProjectName         string             `json:"project_name"`
	DeliveryDate        string             `json:"delivery_date"`
	Version             string             `json:"version"`
	Status              string             `json:"status"`
	Deliverables        Deliverables       `json:"deliverables"`
	Timeline            TimelineSummary    `json:"timeline"`
	TechnicalHighlights []string           `json:"technical_highlights"`
	BusinessValue       OrderedMap[string] `json:"business_value"`
}

// Deliverables groups everything shipped with the project
type Deliverables struct {
	LiveApplication      LiveApplication      `json:"live_application"`
	DocumentationPackage DocumentationPackage `json:"documentation_package"`
	SourceCode           SourceCode           `json:"source_code"`
	DeploymentReady      DeploymentTargets    `json:"deployment_ready"`
}

// LiveApplication describes the hosted demo
type LiveApplication struct {
	URL      string   `json:"url"`
	Features []string `json:"features"`
}

// DocumentationPackage describes the shipped documentation
type DocumentationPackage struct {
	Files    int      `json:"files"`
	Pages    string   `json:"pages"`
	Coverage []string `json:"coverage"`
}

// SourceCode describes the shipped source tree and its technology stack
type SourceCode struct {
	TotalFiles      int    `json:"total_files"`
	Frontend        string `json:"frontend"`
	Backend         string `json:"backend"`
	Desktop         string `json:"desktop"`
	Styling         string `json:"styling"`
	StateManagement string `json:"state_management"`
	Editor          string `json:"editor"`
	AIIntegration   string `json:"ai_integration"`
}

// Stack returns the technology entries keyed by their JSON field names
func (s SourceCode) Stack() OrderedMap[string] {
	return OrderedMap[string]{
		{Key: "frontend", Value: s.Frontend},
		{Key: "backend", Value: s.Backend},
		{Key: "desktop", Value: s.Desktop},
		{Key: "styling", Value: s.Styling},
		{Key: "state_management", Value: s.StateManagement},
		{Key: "editor", Value: s.Editor},
		{Key: "ai_integration", Value: s.AIIntegration},
	}
}

// DeploymentTargets lists supported hosting options
type DeploymentTargets struct {
	WebPlatforms     []string `json:"web_platforms"`
	DesktopPlatforms []string `json:"desktop_platforms"`
	BackendHosting   []string `json:"backend_hosting"`
	DatabaseOptions  []string `json:"database_options"`
}

// TimelineSummary condenses the development timeline
type TimelineSummary struct {
	TotalDuration       string `json:"total_duration"`
	Phases              int    `json:"phases"`
	EstimatedCompletion string `json:"estimated_completion"`
	CurrentStatus       string `json:"current_status"`
}

// Artifact is a document written to the output directory
type Artifact struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Artifact file names
const (
	TimelineFile         = "timeline.json"
	PackageFile          = "package.json"
	BackendAPIFile       = "backend-api.json"
	BackendPackageFile   = "backend-package.json"
	ServerConfigFile     = "server-config.json"
	DatabaseSchemaFile   = "database-schema.json"
	DeliverySummaryFile  = "delivery-summary.json"
	PackageStructureFile = "package-structure.json"
)

// GeneratedFiles lists every artifact the generators produce, in generation order
var GeneratedFiles = []string{
	TimelineFile,
	PackageFile,
	BackendAPIFile,
	BackendPackageFile,
	ServerConfigFile,
	DatabaseSchemaFile,
	DeliverySummaryFile,
}
