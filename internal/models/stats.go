package models

// Stats holds the dashboard counters: active students, offered courses,
// and all enrollments regardless of grade.
type Stats struct {
	Students    int `json:"students"`
	Courses     int `json:"courses"`
	Enrollments int `json:"enrollments"`
}
