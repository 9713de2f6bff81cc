package models

type JobsPDFData struct {
	Organization *Organization
	Contacts     string
	Generated    string
	Jobs         []JobPDFRow
	Count        int
}

type JobPDFRow struct {
	Index       int
	Job         *Job
	Posted      string
	Salary      string
	SalaryWords string
}
