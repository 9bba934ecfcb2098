package importer

// Failure codes.
const (
	CodeExportsUnreadable = "exports_unreadable"
	CodeSetFolderMissing  = "set_folder_missing"
	CodeNoCSVFiles        = "no_csv_files"
	CodeStoreError        = "store_error"
	CodeInternal          = "internal"
)

// Failure is a structured, non-panicking import error. Callers branch on it
// instead of unwinding: a nil Failure means the operation succeeded.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

func failf(code, msg, details string) *Failure {
	return &Failure{Code: code, Message: msg, Details: details}
}
