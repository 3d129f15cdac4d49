package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "github.com/TranushReddy/crop-market/gen/mocks/httpapi"
	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropHandler_Create(t *testing.T) {
	t.Parallel()

	validBody := map[string]any{
		"farmerId":          1,
		"cropName":          "Tomatoes",
		"description":       "Vine ripened",
		"availableQuantity": 25.0,
		"pricePerUnit":      2.50,
		"unit":              "kg",
	}

	type testCase struct {
		name           string
		requestBody    map[string]any
		expectedStatus int

		prepareFn func(t *testing.T, ctrl *gomock.Controller) CropService
	}

	tests := []testCase{
		{
			name:           "successful creation",
			requestBody:    validBody,
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CropService {
				mockService := mocks.NewMockCropService(ctrl)
				mockService.EXPECT().
					AddCropListing(gomock.Any(), domain.CropListing{
						FarmerId:          1,
						CropName:          "Tomatoes",
						Description:       "Vine ripened",
						AvailableQuantity: 25.0,
						PricePerUnit:      2.50,
						Unit:              "kg",
					}).
					Return(domain.CropListing{
						Id:                5,
						FarmerId:          1,
						CropName:          "Tomatoes",
						Description:       "Vine ripened",
						AvailableQuantity: 25.0,
						PricePerUnit:      2.50,
						Unit:              "kg",
					}, nil).
					Times(1)

				return mockService
			},
		},
		{
			name: "negative quantity rejected by binding",
			requestBody: map[string]any{
				"farmerId":          1,
				"cropName":          "Tomatoes",
				"availableQuantity": -5.0,
				"pricePerUnit":      2.50,
				"unit":              "kg",
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CropService {
				return mocks.NewMockCropService(ctrl)
			},
		},
		{
			name:           "unknown farmer",
			requestBody:    validBody,
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CropService {
				mockService := mocks.NewMockCropService(ctrl)
				mockService.EXPECT().
					AddCropListing(gomock.Any(), gomock.Any()).
					Return(domain.CropListing{}, &domain.FarmerNotFoundError{Msg: "farmer with id 1 not found"})

				return mockService
			},
		},
		{
			name:           "internal error",
			requestBody:    validBody,
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CropService {
				mockService := mocks.NewMockCropService(ctrl)
				mockService.EXPECT().
					AddCropListing(gomock.Any(), gomock.Any()).
					Return(domain.CropListing{}, assert.AnError)

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := NewCropHandler(mockService)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)

			bodyBytes, _ := json.Marshal(tt.requestBody)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestCropHandler_GetStock(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		cropId         string
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) CropService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "stock returned",
			cropId:         "1",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CropService {
				mockService := mocks.NewMockCropService(ctrl)
				mockService.EXPECT().
					GetAvailableQuantity(gomock.Any(), 1).
					Return(25.0, nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				t.Helper()

				var response apiResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

				assert.True(t, response.Success)

				data, ok := response.Data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, 1.0, data["cropId"])
				assert.Equal(t, 25.0, data["availableQuantity"])
			},
		},
		{
			name:           "invalid id",
			cropId:         "zero",
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CropService {
				return mocks.NewMockCropService(ctrl)
			},
		},
		{
			name:           "crop not found",
			cropId:         "42",
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CropService {
				mockService := mocks.NewMockCropService(ctrl)
				mockService.EXPECT().
					GetAvailableQuantity(gomock.Any(), 42).
					Return(0.0, &domain.CropNotFoundError{Msg: "crop listing with id 42 not found"})

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := NewCropHandler(mockService)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/crops/"+tt.cropId+"/stock", nil)
			c.Params = gin.Params{{Key: IdKey, Value: tt.cropId}}

			handler.GetStock(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
