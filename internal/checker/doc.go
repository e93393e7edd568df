// Package checker validates SSL Labs host reports against a TLS policy.
//
// Two checks are provided:
//
//   - CheckGrades partitions endpoints by overall grade. Rejections are soft:
//     they are returned as data and never as an error.
//   - CheckTLSConfig walks each endpoint's cipher suites per supported protocol
//     and its offered key-exchange groups. An unacceptable suite or group stops
//     the run immediately; required groups are only verified once the whole
//     group list has been seen. Options.CollectAll switches to reporting every
//     violation at once.
//
// Both checks return structured results (GradeResult, TLSResult) so the cmd/
// package decides how findings are printed.
package checker
