// internal/adapters/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/testutil"
)

func sampleReport() *domain.RunReport {
	report := domain.NewRunReport(big.NewInt(10403))

	failed := domain.NewStageOutcome("direct")
	failed.Duration = 5 * time.Millisecond
	failed.AddWarning("general factorizer failed: budget exhausted")
	report.AddStage(*failed)

	solved := domain.NewStageOutcome("trialdivision")
	solved.SetFactors([]*big.Int{big.NewInt(101), big.NewInt(103)})
	solved.Duration = 12 * time.Millisecond
	report.AddStage(*solved)

	report.Factors = solved.Factors
	report.Verified = true
	report.Finalize()
	return report
}

func TestBuildDocument(t *testing.T) {
	doc := buildDocument(sampleReport())

	testutil.AssertEqual(t, doc.Target, "10403", "target as decimal string")
	testutil.AssertEqual(t, doc.Digits, 5, "digit count")
	testutil.AssertEqual(t, doc.Terminal, "trialdivision", "terminal stage")
	testutil.AssertFalse(t, doc.Exhausted, "not exhausted")
	testutil.AssertTrue(t, doc.Verified, "verified")
	testutil.AssertEqual(t, len(doc.Factors), 2, "factors serialized")
	testutil.AssertEqual(t, doc.Factors[0], "101", "factor string")
	testutil.AssertEqual(t, len(doc.Stages), 2, "both stages")
	testutil.AssertEqual(t, len(doc.Stages[0].Warnings), 1, "warning carried")
}

func TestBuildDocumentExhausted(t *testing.T) {
	report := domain.NewRunReport(big.NewInt(997))
	report.AddStage(*domain.NewStageOutcome("direct"))
	report.Finalize()

	doc := buildDocument(report)
	testutil.AssertTrue(t, doc.Exhausted, "exhausted flagged")
	testutil.AssertEqual(t, doc.Terminal, "", "no terminal stage")
	testutil.AssertEqual(t, len(doc.Factors), 0, "empty factor list, not null")
}

func TestOutputJSONWritesFile(t *testing.T) {
	dir := t.TempDir()
	path, err := OutputJSON(dir, sampleReport())
	testutil.AssertNoError(t, err, "OutputJSON")
	testutil.AssertTrue(t, strings.HasPrefix(path, dir), "file under output dir")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "read back")

	var doc map[string]any
	testutil.AssertNoError(t, json.Unmarshal(data, &doc), "valid JSON")
	testutil.AssertEqual(t, doc["target"], "10403", "round trip target")
	testutil.AssertEqual(t, doc["verified"], true, "round trip verified")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, writeTable(&buf, sampleReport()), "writeTable")

	out := buf.String()
	testutil.AssertTrue(t, strings.Contains(out, "trialdivision"), "stage listed")
	testutil.AssertTrue(t, strings.Contains(out, "101 × 103"), "factor product line")
	testutil.AssertTrue(t, strings.Contains(out, "PASS"), "verification verdict")
}

func TestWriteTableExhausted(t *testing.T) {
	report := domain.NewRunReport(big.NewInt(997))
	report.AddStage(*domain.NewStageOutcome("direct"))
	report.Finalize()

	var buf bytes.Buffer
	testutil.AssertNoError(t, writeTable(&buf, report), "writeTable")
	testutil.AssertTrue(t, strings.Contains(buf.String(), "No factors found"), "exhaustion message")
}
