package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldDataset    = "dataset"
	FieldBackend    = "backend"
	FieldRowCount   = "row_count"
	FieldSheetName  = "sheet_name"
	FieldFilename   = "filename"
	FieldView       = "view"
	FieldCostCenter = "cost_center"
	FieldCategory   = "natureza"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentDataset   = "dataset"
	ComponentStorage   = "storage"
	ComponentDashboard = "dashboard"
	ComponentExport    = "export"
	ComponentSession   = "session"
	ComponentCache     = "cache"
	ComponentSeed      = "seed"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpFilter    = "filter"
	OpAggregate = "aggregate"
	OpExport    = "export"
	OpPrint     = "print"
	OpSeed      = "seed"
	OpRender    = "render"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
