// CLI integration tests for chairside.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/praxos/chairside/pkg/types"
)

// TestMain builds the chairside binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "chairside-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "chairside")
	SetChairsideBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/chairside")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

func TestInit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunChairside("init")
	if result.Stdout == "" {
		t.Error("expected init output message")
	}

	if _, err := os.Stat(env.DataDir); os.IsNotExist(err) {
		t.Error("data directory not created")
	}
	dbFile := filepath.Join(env.DataDir, "chairside.db")
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		t.Error("chairside.db not created")
	}
}

func TestPatientLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunChairside("init")

	result := env.MustRunChairside("patient", "add",
		"--name", "Ana Petrov", "--phone", "555-0100", "--json")
	patient := ParseJSON[types.Patient](t, result.Stdout)
	if patient.ID == "" {
		t.Fatal("expected patient id in JSON output")
	}
	if patient.CreatedAt == "" {
		t.Error("expected createdAt in JSON output")
	}

	env.MustRunChairside("patient", "update", patient.ID, "phone=555-0199")

	result = env.MustRunChairside("patient", "get", patient.ID, "--json")
	got := ParseJSON[types.Patient](t, result.Stdout)
	if got.Phone != "555-0199" {
		t.Errorf("phone = %q, want 555-0199", got.Phone)
	}
	if got.Name != "Ana Petrov" {
		t.Errorf("name = %q, want Ana Petrov", got.Name)
	}

	env.MustRunChairside("patient", "delete", patient.ID)

	result = env.RunChairside("patient", "get", patient.ID)
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit for deleted patient")
	}
}

func TestTreatmentMarksLastVisit(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunChairside("init")

	result := env.MustRunChairside("patient", "add",
		"--name", "Ana Petrov", "--phone", "555-0100", "--json")
	patient := ParseJSON[types.Patient](t, result.Stdout)

	env.MustRunChairside("treatment", "add",
		"--patient", patient.ID, "--date", "2026-03-01",
		"--procedure", "Cleaning", "--cost", "80")

	result = env.MustRunChairside("patient", "get", patient.ID, "--json")
	got := ParseJSON[types.Patient](t, result.Stdout)
	if got.LastVisit != "2026-03-01" {
		t.Errorf("lastVisit = %q, want 2026-03-01", got.LastVisit)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunChairside("init")

	result := env.MustRunChairside("patient", "add",
		"--name", "Ana Petrov", "--phone", "555-0100", "--json")
	patient := ParseJSON[types.Patient](t, result.Stdout)

	backupFile := filepath.Join(env.TempDir, "backup.json")
	env.MustRunChairside("export", "-o", backupFile)

	env.MustRunChairside("clear", "--password", "admin123")

	result = env.MustRunChairside("patient", "list", "--json")
	patients := ParseJSON[[]types.Patient](t, result.Stdout)
	if len(patients) != 0 {
		t.Fatalf("expected empty roster after clear, got %d", len(patients))
	}

	env.MustRunChairside("import", backupFile)

	result = env.MustRunChairside("patient", "get", patient.ID, "--json")
	got := ParseJSON[types.Patient](t, result.Stdout)
	if got.Name != "Ana Petrov" {
		t.Errorf("name after import = %q, want Ana Petrov", got.Name)
	}
}

func TestClearRequiresPassword(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunChairside("init")
	env.MustRunChairside("patient", "add", "--name", "Ana Petrov", "--phone", "555-0100")

	result := env.RunChairside("clear", "--password", "wrong")
	if result.ExitCode == 0 {
		t.Fatal("expected non-zero exit for wrong password")
	}

	result = env.MustRunChairside("patient", "list", "--json")
	patients := ParseJSON[[]types.Patient](t, result.Stdout)
	if len(patients) != 1 {
		t.Errorf("expected roster untouched after denied clear, got %d", len(patients))
	}
}

func TestPasswordChange(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunChairside("init")

	env.MustRunChairside("password", "change", "--old", "admin123", "--new", "s3cret")

	result := env.RunChairside("password", "change", "--old", "admin123", "--new", "other")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit when old password no longer matches")
	}

	env.MustRunChairside("password", "change", "--old", "s3cret", "--new", "admin123")
}

func TestPrefsAndInvoice(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunChairside("init")

	env.MustRunChairside("prefs", "set", "taxRate=10")

	result := env.MustRunChairside("patient", "add",
		"--name", "Ana Petrov", "--phone", "555-0100", "--json")
	patient := ParseJSON[types.Patient](t, result.Stdout)

	env.MustRunChairside("treatment", "add",
		"--patient", patient.ID, "--date", "2026-03-01",
		"--procedure", "Cleaning", "--cost", "100")
	env.MustRunChairside("treatment", "add",
		"--patient", patient.ID, "--date", "2026-03-02",
		"--procedure", "Filling", "--cost", "50")
	env.MustRunChairside("payment", "add",
		"--patient", patient.ID, "--date", "2026-03-02",
		"--amount", "60", "--method", "card")

	result = env.MustRunChairside("invoice", patient.ID, "--json")
	invoice := ParseJSON[struct {
		Subtotal   float64
		Tax        float64
		Total      float64
		AmountPaid float64
		Balance    float64
	}](t, result.Stdout)

	if invoice.Subtotal != 150 {
		t.Errorf("Subtotal = %v, want 150", invoice.Subtotal)
	}
	if invoice.Tax != 15 {
		t.Errorf("Tax = %v, want 15", invoice.Tax)
	}
	if invoice.Total != 165 {
		t.Errorf("Total = %v, want 165", invoice.Total)
	}
	if invoice.Balance != 105 {
		t.Errorf("Balance = %v, want 105", invoice.Balance)
	}
}

func TestStatsHidesRevenueWhenDisabled(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunChairside("init")

	env.MustRunChairside("prefs", "set", "showRevenue=false")

	result := env.MustRunChairside("stats")
	if !strings.Contains(result.Stdout, "hidden") {
		t.Errorf("expected hidden revenue notice, got: %s", result.Stdout)
	}

	result = env.MustRunChairside("stats", "--password", "admin123")
	if strings.Contains(result.Stdout, "hidden") {
		t.Errorf("expected revenue figures with password, got: %s", result.Stdout)
	}
}
