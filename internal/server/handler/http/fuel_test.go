package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avakimov/fleetdeck/internal/models"
	"github.com/avakimov/fleetdeck/internal/service"
)

// fakeStationService implements StationService for testing.
type fakeStationService struct {
	listReturn   []models.FuelStation
	listErr      error
	getReturn    *models.FuelStation
	createReturn *models.FuelStation
	createErr    error
	updateReturn *models.FuelStation
	updateErr    error
	deleteErr    error
}

func (f *fakeStationService) List(ctx context.Context) ([]models.FuelStation, error) {
	return f.listReturn, f.listErr
}

func (f *fakeStationService) Get(ctx context.Context, id int) (*models.FuelStation, error) {
	return f.getReturn, nil
}

func (f *fakeStationService) Create(ctx context.Context, req models.FuelStationPatch) (*models.FuelStation, error) {
	return f.createReturn, f.createErr
}

func (f *fakeStationService) Update(ctx context.Context, id int, patch models.FuelStationPatch) (*models.FuelStation, error) {
	return f.updateReturn, f.updateErr
}

func (f *fakeStationService) Delete(ctx context.Context, id int) error {
	return f.deleteErr
}

// fakeFuelService implements FuelService for testing.
type fakeFuelService struct {
	listReturn []models.FuelRecord
	listErr    error
	getReturn  *models.FuelRecord
	postReturn *models.FuelRecord
	postErr    error
	deleteErr  error

	lastPost service.FuelPostRequest
}

func (f *fakeFuelService) ListRecords(ctx context.Context) ([]models.FuelRecord, error) {
	return f.listReturn, f.listErr
}

func (f *fakeFuelService) GetRecord(ctx context.Context, id int) (*models.FuelRecord, error) {
	return f.getReturn, nil
}

func (f *fakeFuelService) PostRecord(ctx context.Context, req service.FuelPostRequest) (*models.FuelRecord, error) {
	f.lastPost = req
	return f.postReturn, f.postErr
}

func (f *fakeFuelService) DeleteRecord(ctx context.Context, id int) error {
	return f.deleteErr
}

func TestFuelHandler_ListStations(t *testing.T) {
	tests := []struct {
		name         string
		service      *fakeStationService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "empty store returns empty array",
			service:      &fakeStationService{},
			expectedCode: http.StatusOK,
			expectedBody: "[]",
		},
		{
			name:         "stations returned",
			service:      &fakeStationService{listReturn: []models.FuelStation{{ID: 1, Name: "Shell La Jolla"}}},
			expectedCode: http.StatusOK,
			expectedBody: "Shell La Jolla",
		},
		{
			name:         "store error",
			service:      &fakeStationService{listErr: errors.New("db down")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "failed to fetch fuel stations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/fuel-stations", nil)
			h := &FuelHandler{StationService: tt.service}
			h.ListStations(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}
			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedBody)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedBody, buf.String())
			}
		})
	}
}

func TestFuelHandler_CreateStation(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeStationService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `nope`,
			service:      &fakeStationService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "validation failure",
			body:         `{"name":""}`,
			service:      &fakeStationService{createErr: service.ValidationError("name and a positive price are required")},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "created",
			body:         `{"name":"Chevron UTC","currentPrice":4.15}`,
			service:      &fakeStationService{createReturn: &models.FuelStation{ID: 2, Name: "Chevron UTC"}},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/fuel-stations", bytes.NewBufferString(tt.body))
			h := &FuelHandler{StationService: tt.service}
			h.CreateStation(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}

func TestFuelHandler_PostRecord(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeFuelService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `{]`,
			service:      &fakeFuelService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "non-positive amount",
			body:         `{"vehicleId":2,"stationId":3,"amount":0,"pricePerGallon":4.0}`,
			service:      &fakeFuelService{postErr: service.ValidationError("amount and pricePerGallon must be positive")},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "workflow error",
			body:         `{"vehicleId":2,"stationId":3,"amount":10,"pricePerGallon":4.0}`,
			service:      &fakeFuelService{postErr: errors.New("db down")},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "created",
			body:         `{"vehicleId":2,"stationId":3,"amount":10,"pricePerGallon":4.0}`,
			service:      &fakeFuelService{postReturn: &models.FuelRecord{ID: 1, TotalCost: 40}},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/fuel-records", bytes.NewBufferString(tt.body))
			h := &FuelHandler{FuelService: tt.service}
			h.PostRecord(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}

func TestFuelHandler_PostRecord_PassesRequestThrough(t *testing.T) {
	svc := &fakeFuelService{postReturn: &models.FuelRecord{ID: 1}}
	rec := httptest.NewRecorder()
	body := `{"vehicleId":2,"vehicleName":"GT-R","stationId":3,"amount":7.3,"pricePerGallon":4.19,"mileage":12600}`
	req := httptest.NewRequest("POST", "/api/fuel-records", bytes.NewBufferString(body))
	h := &FuelHandler{FuelService: svc}
	h.PostRecord(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if svc.lastPost.VehicleID != 2 || svc.lastPost.StationID != 3 {
		t.Errorf("ids = %d/%d; want 2/3", svc.lastPost.VehicleID, svc.lastPost.StationID)
	}
	if svc.lastPost.Amount != 7.3 || svc.lastPost.PricePerGallon != 4.19 {
		t.Errorf("amount/price = %v/%v; want 7.3/4.19", svc.lastPost.Amount, svc.lastPost.PricePerGallon)
	}
	if svc.lastPost.Mileage == nil || *svc.lastPost.Mileage != 12600 {
		t.Errorf("mileage = %v; want 12600", svc.lastPost.Mileage)
	}
}

func TestFuelHandler_GetRecord_Missing(t *testing.T) {
	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest("GET", "/api/fuel-records/99", nil), "99")
	h := &FuelHandler{FuelService: &fakeFuelService{}}
	h.GetRecord(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestFuelHandler_DeleteRecord(t *testing.T) {
	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest("DELETE", "/api/fuel-records/5", nil), "5")
	h := &FuelHandler{FuelService: &fakeFuelService{}}
	h.DeleteRecord(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}
