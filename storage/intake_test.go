package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ev-warehouse/models"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intake.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

const validHeader = "company,model,drivetrain,class,seat,price_raw,range_raw,efficiency,weight,zero_to_sixty,one_stop_range,battery,rapidcharge,towing,boot_space,price_range"

func TestReadIntakeValidBatch(t *testing.T) {
	path := writeTempCSV(t, validHeader+"\n"+
		"Tesla,Model 3,Rear Wheel Drive,D,5,£38990,305 mi,250 Wh/mi,1765 kg,6.1 sec,290 mi,57.5 kWh,170 kW,1000 kg,425 L,128\n"+
		"BMW,i4,,,,,,,,,,,,,,\n")

	rows, err := ReadIntake(path)
	if err != nil {
		t.Fatalf("ReadIntake returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Company != "Tesla" || rows[0].Battery != "57.5 kWh" {
		t.Errorf("row 0 not mapped correctly: %+v", rows[0])
	}
	if rows[1].Company != "BMW" || rows[1].PriceRaw != "" {
		t.Errorf("row 1 not mapped correctly: %+v", rows[1])
	}
}

func TestReadIntakeColumnOrderInsensitive(t *testing.T) {
	// Same columns, shuffled order, plus an extra column that is ignored.
	path := writeTempCSV(t,
		"model,company,price_raw,drivetrain,class,seat,range_raw,efficiency,weight,zero_to_sixty,one_stop_range,battery,rapidcharge,towing,boot_space,price_range,extra\n"+
			"Model Y,Tesla,£44990,All Wheel Drive,D,5,283 mi,,,,,,,,,,ignored\n")

	rows, err := ReadIntake(path)
	if err != nil {
		t.Fatalf("ReadIntake returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Company != "Tesla" || rows[0].Model != "Model Y" || rows[0].PriceRaw != "£44990" {
		t.Errorf("shuffled columns not mapped correctly: %+v", rows[0])
	}
}

func TestReadIntakeMissingColumns(t *testing.T) {
	path := writeTempCSV(t,
		"company,model,drivetrain,class,seat\n"+
			"Tesla,Model 3,RWD,D,5\n")

	_, err := ReadIntake(path)
	var schemaErr *models.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(schemaErr.Missing) != 11 {
		t.Errorf("expected 11 missing columns, got %d: %v",
			len(schemaErr.Missing), schemaErr.Missing)
	}
}

func TestReadIntakeCaseSensitiveNames(t *testing.T) {
	// Column names are case-sensitive: "Company" does not satisfy "company".
	path := writeTempCSV(t,
		"Company,model,drivetrain,class,seat,price_raw,range_raw,efficiency,weight,zero_to_sixty,one_stop_range,battery,rapidcharge,towing,boot_space,price_range\n")

	_, err := ReadIntake(path)
	var schemaErr *models.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(schemaErr.Missing) != 1 || schemaErr.Missing[0] != "company" {
		t.Errorf("expected only %q missing, got %v", "company", schemaErr.Missing)
	}
}

func TestReadIntakeEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := ReadIntake(path)
	var schemaErr *models.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError for empty file, got %v", err)
	}
}

func TestReadIntakeShortRecords(t *testing.T) {
	path := writeTempCSV(t, validHeader+"\n"+"Tesla,Model 3\n")

	rows, err := ReadIntake(path)
	if err != nil {
		t.Fatalf("ReadIntake returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Company != "Tesla" || rows[0].Battery != "" {
		t.Errorf("short record not padded with empty values: %+v", rows[0])
	}
}

func TestReadIntakeMissingFile(t *testing.T) {
	if _, err := ReadIntake(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
