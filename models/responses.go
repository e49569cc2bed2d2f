package models

// PageMeta is the paging metadata returned with every solutions listing
// page.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
}

// IsLast reports whether no page follows this one.
func (m PageMeta) IsLast() bool {
	return m.CurrentPage >= m.TotalPages
}

// SolutionsPage is one page of the solutions listing.
type SolutionsPage struct {
	Results []Solution `json:"results"`
	Meta    PageMeta   `json:"meta"`
}

// SolutionDetails is the v1 solution payload; only the file list is used.
type SolutionDetails struct {
	ID                  string   `json:"id"`
	URL                 string   `json:"url,omitempty"`
	FileDownloadBaseURL string   `json:"file_download_base_url,omitempty"`
	Files               []string `json:"files"`
}

// SolutionResponse wraps [SolutionDetails] as returned by GET /v1/solutions/{uuid}.
type SolutionResponse struct {
	Solution SolutionDetails `json:"solution"`
}

// SolutionIterationsResponse is returned by GET /v2/solutions/{uuid} when
// iterations are sideloaded.
type SolutionIterationsResponse struct {
	Solution   Solution    `json:"solution"`
	Iterations []Iteration `json:"iterations"`
}

// SubmissionFilesResponse is returned by
// GET /v2/solutions/{uuid}/submissions/{submission_uuid}/files.
type SubmissionFilesResponse struct {
	Files []SubmissionFile `json:"files"`
}
