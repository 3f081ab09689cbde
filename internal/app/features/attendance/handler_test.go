package attendance_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/hrmslite/internal/app/features/attendance"
	"github.com/dalemusser/hrmslite/internal/app/system/days"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/hrmslite/internal/testutil"
	"go.uber.org/zap"
)

func markBody(employeeID, date, status string) map[string]string {
	return map[string]string{
		"employeeId": employeeID,
		"date":       date,
		"status":     status,
	}
}

// Validation failures are rejected before any storage access, so these tests
// run without a database.
func TestHandleMark_MissingFields(t *testing.T) {
	router := attendance.Routes(attendance.NewHandler(nil, true, zap.NewNop()))

	cases := []map[string]string{
		{},
		{"employeeId": "EMP001"},
		{"employeeId": "EMP001", "date": "2024-01-01"},
		{"employeeId": "EMP001", "status": "Present"},
	}

	for _, body := range cases {
		req := testutil.NewJSONRequest(t, "POST", "/", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %v: status got %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
		if msg := testutil.ErrorMessage(t, rec); msg != "All fields are required" {
			t.Errorf("body %v: error got %q", body, msg)
		}
	}
}

func TestHandleMark_InvalidStatus(t *testing.T) {
	router := attendance.Routes(attendance.NewHandler(nil, true, zap.NewNop()))

	for _, status := range []string{"Late", "present", "ABSENT", "Holiday"} {
		req := testutil.NewJSONRequest(t, "POST", "/", markBody("EMP001", "2024-01-01", status))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status %q: got %d, want %d", status, rec.Code, http.StatusBadRequest)
		}
		if msg := testutil.ErrorMessage(t, rec); msg != "Status must be either Present or Absent" {
			t.Errorf("status %q: error got %q", status, msg)
		}
	}
}

func TestHandleMark_InvalidDate(t *testing.T) {
	router := attendance.Routes(attendance.NewHandler(nil, true, zap.NewNop()))

	req := testutil.NewJSONRequest(t, "POST", "/", markBody("EMP001", "01/02/2024", "Present"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleMark_FutureDate(t *testing.T) {
	router := attendance.Routes(attendance.NewHandler(nil, true, zap.NewNop()))

	tomorrow := days.Normalize(time.Now()).AddDate(0, 0, 1).Format(days.ISO)
	req := testutil.NewJSONRequest(t, "POST", "/", markBody("EMP001", tomorrow, "Present"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if msg := testutil.ErrorMessage(t, rec); msg != "Attendance cannot be marked for a future date" {
		t.Errorf("error: got %q", msg)
	}
}

func TestHandleMark_FutureDateAllowedWhenDisabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fixtures.CreateEmployee(ctx, "EMP001", "Jane Doe")

	// RejectFuture off: the rule is an explicitly toggled variant.
	router := attendance.Routes(attendance.NewHandler(db, false, zap.NewNop()))

	tomorrow := days.Normalize(time.Now()).AddDate(0, 0, 1).Format(days.ISO)
	req := testutil.NewJSONRequest(t, "POST", "/", markBody("EMP001", tomorrow, "Present"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestHandleMark_EmployeeNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := attendance.Routes(attendance.NewHandler(db, true, zap.NewNop()))

	req := testutil.NewJSONRequest(t, "POST", "/", markBody("GHOST", "2024-01-01", "Present"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if msg := testutil.ErrorMessage(t, rec); msg != "Employee not found" {
		t.Errorf("error: got %q", msg)
	}
}

func TestHandleMark_CreateAndOverwrite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fixtures.CreateEmployee(ctx, "EMP001", "Jane Doe")

	router := attendance.Routes(attendance.NewHandler(db, true, zap.NewNop()))

	req := testutil.NewJSONRequest(t, "POST", "/", markBody("EMP001", "2024-01-01", "Present"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first mark: status %d (body %s)", rec.Code, rec.Body.String())
	}

	var first models.AttendanceRecord
	testutil.DecodeJSON(t, rec, &first)
	if first.Status != models.StatusPresent {
		t.Errorf("first status: got %q", first.Status)
	}

	// Second mark for the same day overwrites and still answers 201.
	req = testutil.NewJSONRequest(t, "POST", "/", markBody("EMP001", "2024-01-01", "Absent"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("second mark: status %d (body %s)", rec.Code, rec.Body.String())
	}

	var second models.AttendanceRecord
	testutil.DecodeJSON(t, rec, &second)
	if second.Status != models.StatusAbsent {
		t.Errorf("overwritten status: got %q, want Absent", second.Status)
	}
	if second.ID != first.ID {
		t.Error("overwrite should keep the same stored record")
	}
}

func TestHandleListByEmployee(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateEmployee(ctx, "EMP001", "Jane Doe")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixtures.CreateAttendance(ctx, "EMP001", base, models.StatusPresent)
	fixtures.CreateAttendance(ctx, "EMP001", base.AddDate(0, 0, 2), models.StatusAbsent)
	fixtures.CreateAttendance(ctx, "EMP001", base.AddDate(0, 0, 1), models.StatusPresent)

	router := attendance.Routes(attendance.NewHandler(db, true, zap.NewNop()))

	req := httptest.NewRequest("GET", "/EMP001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var records []models.AttendanceRecord
	testutil.DecodeJSON(t, rec, &records)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if !records[i-1].Date.After(records[i].Date) {
			t.Errorf("records not date-descending at %d", i)
		}
	}
}

func TestHandleListByEmployee_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := attendance.Routes(attendance.NewHandler(db, true, zap.NewNop()))

	req := httptest.NewRequest("GET", "/GHOST", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
