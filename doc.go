// Package pcl2pdf converts legacy PCL-exported payslip text streams into
// paginated PDF documents.
//
// Each input stream holds one or more payslip records separated by a fixed
// delimiter. The library strips embedded PCL control codes, segments the
// cleaned stream into records, and renders one page per record: a fixed
// background image underlay with the payslip text overlaid in a monospaced
// font at fixed coordinates.
//
// Basic usage:
//
//	svc, err := pcl2pdf.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := svc.Convert(ctx, pcl2pdf.Input{Text: raw, Source: path})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile(path+".pdf", result.PDF, 0o644)
package pcl2pdf
