package remote

import "context"

type ImportsService struct {
	client *Client
}

func NewImportsService(client *Client) *ImportsService {
	return &ImportsService{client: client}
}

// ImportTemplate describes the expected spreadsheet shape for one import
// type, as published by the backend.
type ImportTemplate struct {
	Description string   `json:"description"`
	Headers     []string `json:"headers"`
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

func (s *ImportsService) Templates(ctx context.Context) (map[string]ImportTemplate, error) {
	var out struct {
		Templates map[string]ImportTemplate `json:"templates"`
	}
	if err := s.client.getJSON(ctx, "excel_import.php", nil, &out); err != nil {
		return nil, err
	}
	return out.Templates, nil
}

// Import streams a spreadsheet to the backend for row-by-row ingestion.
func (s *ImportsService) Import(ctx context.Context, importType string, skipDuplicates bool, file FileUpload) (ImportResult, error) {
	fields := map[string]string{
		"import_type":     importType,
		"skip_duplicates": "0",
	}
	if skipDuplicates {
		fields["skip_duplicates"] = "1"
	}

	var out struct {
		Data ImportResult `json:"data"`
	}
	err := s.client.postMultipart(ctx, "excel_import.php", fields, map[string]FileUpload{"excel_file": file}, &out)
	if err != nil {
		return ImportResult{}, err
	}
	return out.Data, nil
}
