// Package students implements student reconciliation between the district
// CSV export and the SIS.
//
// The service fetches the full remote student collection through the SIS
// query API, pairs records with the local export by the configured match key
// (student number by default, FTEID for districts that key on it) and
// reports every field-level difference. The SIS is never written to; the
// output is a change report.
//
// # Components
//
//   - Service: fetches remote students and runs the reconciliation.
//   - Handler: exposes the remote count probe.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /students/count : number of students the SIS query matches.
package students
