package payroll

import (
	"bytes"
	"fmt"
	"strings"

	"hris-backoffice/internal/shared/worktime"
)

const payslipPeriodLayout = "January 2006"

func payslipLines(r PayrollResult) []string {
	lines := []string{
		"PAYSLIP",
		"Period: " + r.PeriodStart.Format(payslipPeriodLayout),
		fmt.Sprintf("Window: %s - %s", r.PeriodStart.Format(worktime.DateLayout), r.PeriodEnd.Format(worktime.DateLayout)),
		"Employee: " + r.EmployeeID,
		"",
		"Base salary: " + money(r.BaseSalary),
		"Allowance: " + money(r.Allowance),
		"Bonus: " + money(r.Bonus),
		"Overtime: " + money(r.Overtime),
		"Total income: " + money(r.TotalIncome),
		"",
		"Manual deduction: " + money(r.ManualDeduction),
	}

	if r.LateDeductionAmount != nil {
		lines = append(lines,
			fmt.Sprintf("Late deduction: %s (%d x %s)", money(*r.LateDeductionAmount), r.PunishableLates, money(r.DeductionPerLate)),
		)
	}
	if r.TotalDeduction != nil {
		lines = append(lines, "Total deduction: "+money(*r.TotalDeduction))
	}
	if r.NetSalary != nil {
		lines = append(lines, "", "NET SALARY: "+money(*r.NetSalary))
	}
	if r.Note != "" {
		lines = append(lines, "", "Note: "+r.Note)
	}
	return lines
}

// renderPayslipPDF writes a single A4 page of Helvetica text lines.
func renderPayslipPDF(lines []string) []byte {
	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 790 Td\n")
	for i, line := range lines {
		if i > 0 {
			content.WriteString("T* ")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(line))
	}
	content.WriteString("ET")
	stream := content.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)

	return out.Bytes()
}

func pdfEscape(v string) string {
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(v)
}
