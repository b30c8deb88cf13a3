package document

import (
	"bytes"
	"html/template"

	"github.com/yeonsoft/crm-api/internal/domain/entity"
)

// HTMLRenderer renders an estimate into a self-contained printable HTML
// page. The consumer prints or rasterizes it; no PDF library is involved
// on the server side.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the estimate template once up front.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("estimate").Parse(estimateTemplate)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

type estimateItemView struct {
	No          int
	ItemName    string
	Spec        string
	Quantity    int
	UnitPrice   string
	SupplyValue string
	VAT         string
}

type estimateView struct {
	EstimateNum  string
	Title        string
	IssueDate    string
	ValidUntil   string
	CustomerName string
	Company      string
	BizNumber    string
	BizName      string
	BizCEO       string
	BizAddress   string
	BizPhone     string
	BizEmail     string
	Items        []estimateItemView
	Amount       string
}

// RenderEstimate renders one fully-loaded estimate aggregate.
func (r *HTMLRenderer) RenderEstimate(estimate *entity.Estimate) (string, error) {
	view := estimateView{
		EstimateNum: estimate.EstimateNum,
		Title:       estimate.Title,
		IssueDate:   estimate.IssueDate.Format("2006-01-02"),
		ValidUntil:  estimate.ValidUntil.Format("2006-01-02"),
		BizNumber:   estimate.BizNumber,
		BizName:     estimate.BizName,
		BizCEO:      estimate.BizCEO,
		BizAddress:  estimate.BizAddress,
		BizPhone:    estimate.BizPhone,
		BizEmail:    estimate.BizEmail,
		Amount:      estimate.Amount.Format(),
	}

	if estimate.Customer != nil {
		view.CustomerName = estimate.Customer.Name
		if estimate.Customer.Company != nil {
			view.Company = *estimate.Customer.Company
		}
	}

	for i, item := range estimate.Items {
		spec := ""
		if item.Spec != nil {
			spec = *item.Spec
		}
		view.Items = append(view.Items, estimateItemView{
			No:          i + 1,
			ItemName:    item.ItemName,
			Spec:        spec,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Format(),
			SupplyValue: item.SupplyValue.Format(),
			VAT:         item.VAT.Format(),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// estimateTemplate is the printable quote document layout
const estimateTemplate = `
<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <title>견적서 {{.EstimateNum}}</title>
    <style>
        body { font-family: 'Malgun Gothic', 'Apple SD Gothic Neo', sans-serif; color: #1a1a2e; margin: 40px; }
        h1 { text-align: center; letter-spacing: 24px; margin-bottom: 30px; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
        th, td { border: 1px solid #444; padding: 8px 10px; font-size: 14px; }
        th { background-color: #f0f2f5; }
        td.num { text-align: right; }
        .meta td { border: none; padding: 4px 0; font-size: 14px; }
        .total { font-weight: bold; background-color: #f8fafc; }
    </style>
</head>
<body>
    <h1>견적서</h1>

    <table class="meta">
        <tr><td>견적번호: {{.EstimateNum}}</td><td>발행일: {{.IssueDate}}</td></tr>
        <tr><td>건명: {{.Title}}</td><td>유효기간: {{.ValidUntil}}</td></tr>
        <tr><td>수신: {{.CustomerName}}{{if .Company}} ({{.Company}}){{end}} 귀하</td><td></td></tr>
    </table>

    <table>
        <tr>
            <th>등록번호</th><td>{{.BizNumber}}</td>
            <th>상호</th><td>{{.BizName}}</td>
        </tr>
        <tr>
            <th>대표자</th><td>{{.BizCEO}}</td>
            <th>연락처</th><td>{{.BizPhone}}</td>
        </tr>
        <tr>
            <th>주소</th><td colspan="3">{{.BizAddress}}</td>
        </tr>
    </table>

    <table>
        <tr>
            <th>No</th>
            <th>품명</th>
            <th>규격</th>
            <th>수량</th>
            <th>단가</th>
            <th>공급가액</th>
            <th>세액</th>
        </tr>
        {{range .Items}}
        <tr>
            <td class="num">{{.No}}</td>
            <td>{{.ItemName}}</td>
            <td>{{.Spec}}</td>
            <td class="num">{{.Quantity}}</td>
            <td class="num">{{.UnitPrice}}</td>
            <td class="num">{{.SupplyValue}}</td>
            <td class="num">{{.VAT}}</td>
        </tr>
        {{end}}
        <tr class="total">
            <td colspan="5">합계금액 (부가세 포함)</td>
            <td colspan="2" class="num">₩{{.Amount}}</td>
        </tr>
    </table>
</body>
</html>
`
