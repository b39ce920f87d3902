// Package assets provides access to the static resources bundled with
// pcl2pdf, primarily the payslip background image drawn on every page.
// Assets load from the embedded filesystem by default; a directory on
// disk can be used instead for customized deployments.
package assets
