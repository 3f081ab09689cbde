package employeestore_test

import (
	"testing"

	employeestore "github.com/dalemusser/hrmslite/internal/app/store/employees"
	"github.com/dalemusser/hrmslite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	emp, err := store.Create(ctx, testutil.EmployeeInput("EMP001", "Jane Doe"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if emp.ID.IsZero() {
		t.Error("Create should assign an ObjectID")
	}
	if emp.CreatedAt.IsZero() {
		t.Error("Create should stamp created_at")
	}

	count, err := db.Collection("employees").CountDocuments(ctx, bson.M{"employee_id": "EMP001"})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 employee, got %d", count)
	}
}

func TestStore_Create_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	in := testutil.EmployeeInput("EMP002", "No Email")
	in.Email = "   " // whitespace only counts as missing

	if _, err := store.Create(ctx, in); err != employeestore.ErrMissingFields {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestStore_Create_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.EnsureIndexes(ctx)
	fixtures.CreateEmployee(ctx, "EMP001", "Jane Doe")

	// Other fields differ; only the natural key collides.
	in := testutil.EmployeeInput("EMP001", "Someone Else")
	in.Email = "else@example.com"

	if _, err := store.Create(ctx, in); err != employeestore.ErrDuplicateEmployeeID {
		t.Errorf("expected ErrDuplicateEmployeeID, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if got, err := store.List(ctx); err != nil || len(got) != 0 {
		t.Fatalf("List on empty collection: got %v, %v", got, err)
	}

	fixtures.CreateEmployee(ctx, "EMP001", "Jane Doe")
	fixtures.CreateEmployee(ctx, "EMP002", "John Roe")

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(got))
	}

	// Order is not guaranteed; compare as a set.
	seen := map[string]bool{}
	for _, e := range got {
		seen[e.EmployeeID] = true
	}
	if !seen["EMP001"] || !seen["EMP002"] {
		t.Errorf("List missing records: %v", seen)
	}
}

func TestStore_GetByEmployeeID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateEmployee(ctx, "EMP001", "Jane Doe")

	got, err := store.GetByEmployeeID(ctx, "EMP001")
	if err != nil {
		t.Fatalf("GetByEmployeeID failed: %v", err)
	}
	if got.Name != "Jane Doe" {
		t.Errorf("Name: got %q, want %q", got.Name, "Jane Doe")
	}

	if _, err := store.GetByEmployeeID(ctx, "NOPE"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateEmployee(ctx, "EMP001", "Jane Doe")

	ok, err := store.Exists(ctx, "EMP001")
	if err != nil || !ok {
		t.Errorf("Exists(EMP001): got %v, %v", ok, err)
	}
	ok, err = store.Exists(ctx, "NOPE")
	if err != nil || ok {
		t.Errorf("Exists(NOPE): got %v, %v", ok, err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateEmployee(ctx, "EMP001", "Jane Doe")

	if err := store.Delete(ctx, "EMP001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	count, _ := db.Collection("employees").CountDocuments(ctx, bson.M{"employee_id": "EMP001"})
	if count != 0 {
		t.Errorf("expected 0 employees after delete, got %d", count)
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Delete(ctx, "NOPE"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}
