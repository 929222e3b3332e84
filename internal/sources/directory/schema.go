package directory

// coursesDocument is the top-level shape of the courses source: a
// single object holding one named array.
type coursesDocument struct {
	Courses []courseRecord `json:"courses"`
}

// internshipsDocument is the top-level shape of the internships source.
type internshipsDocument struct {
	Internships []internshipRecord `json:"internships"`
}

// courseRecord mirrors one course object as published by the source.
type courseRecord struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Provider    string   `json:"provider"`
	Duration    string   `json:"duration"`
	Rating      *float64 `json:"rating,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	URL         string   `json:"url"`
	Icon        string   `json:"icon"`
}

// internshipRecord mirrors one internship object as published by the source.
type internshipRecord struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Level        string   `json:"level"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Duration     string   `json:"duration"`
	Paid         bool     `json:"paid"`
	Salary       *string  `json:"salary,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	URL          string   `json:"url"`
	Icon         string   `json:"icon"`
}
