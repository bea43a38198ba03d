package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitstop/config"
	kafkaMocks "pitstop/infras/kafka/mocks"
	"pitstop/infras/otel/mocks"
	s3Mocks "pitstop/infras/s3/mocks"
	apptMocks "pitstop/internal/domains/appointment/mocks"
	"pitstop/internal/domains/appointment/model"
	"pitstop/internal/domains/appointment/model/dto"
	"pitstop/internal/domains/appointment/service"
	userMocks "pitstop/internal/domains/user/mocks"
	userModel "pitstop/internal/domains/user/model"
	cacheMocks "pitstop/shared/cache/mocks"
	"pitstop/shared/constant"
	"pitstop/shared/failure"
	gModel "pitstop/shared/model"
	"pitstop/shared/timezone"
)

type testMocks struct {
	repo     *apptMocks.MockAppointment
	userRepo *userMocks.MockUser
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
	s3       *s3Mocks.MockS3
}

func newService(t *testing.T) (service.Appointment, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := testMocks{
		repo:     apptMocks.NewMockAppointment(ctrl),
		userRepo: userMocks.NewMockUser(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	// Cache invalidation and event publishing run on background goroutines.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.RedTagDays = 3

	svc := service.New(m.repo, m.userRepo, cfg, m.cache, mocks.NewOtel(), m.kafka, m.s3)

	return svc, m
}

func customerCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func staffCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleStaff)
}

// futureSlot returns a slot-aligned time two days from now.
func futureSlot(hour int) time.Time {
	day := timezone.Now().AddDate(0, 0, 2)

	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

func createRequest(at time.Time) dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		FirstName:              "Jane",
		LastName:               "Doe",
		ContactNumber:          "08123456789",
		Email:                  "jane@example.com",
		ServiceCategory:        "Engine Oil",
		ServiceType:            "Oil Change",
		AppointmentDateTime:    at.Format(time.RFC3339),
		DownPayment:            150,
		TransactionReferenceNo: "TRX-001",
	}
}

func cleanCustomer(id string) userModel.User {
	return userModel.User{
		ID:    id,
		Email: "jane@example.com",
		Role:  constant.RoleUser,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAppointmentService_Create(t *testing.T) {
	at := futureSlot(10)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateAppointmentRequest
		setupMock func(m testMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "customer books a free slot",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(at),
			setupMock: func(m testMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cleanCustomer("customer-1"), nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "red tagged customer is blocked",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(at),
			setupMock: func(m testMocks) {
				expires := timezone.Now().Add(48 * time.Hour)
				tagged := cleanCustomer("customer-1")
				tagged.IsRedTagged = true
				tagged.RedTagExpiresAt = &expires

				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tagged, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "expired red tag no longer blocks",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(at),
			setupMock: func(m testMocks) {
				expires := timezone.Now().Add(-time.Hour)
				tagged := cleanCustomer("customer-1")
				tagged.IsRedTagged = true
				tagged.RedTagExpiresAt = &expires

				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tagged, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "slot already booked",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(at),
			setupMock: func(m testMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cleanCustomer("customer-1"), nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{{
						ID:                  "existing-id",
						ServiceCategory:     "Engine Oil",
						AppointmentDateTime: at,
						Status:              model.StatusUpcoming,
					}}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancelled appointment frees the slot",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(at),
			setupMock: func(m testMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cleanCustomer("customer-1"), nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{{
						ID:                  "existing-id",
						ServiceCategory:     "Engine Oil",
						AppointmentDateTime: at,
						Status:              model.StatusCancelled,
					}}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "different category does not conflict",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(at),
			setupMock: func(m testMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cleanCustomer("customer-1"), nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{{
						ID:                  "existing-id",
						ServiceCategory:     "Brake",
						AppointmentDateTime: at,
						Status:              model.StatusUpcoming,
					}}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "time off the slot grid",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(at.Add(17 * time.Minute)),
			setupMock: func(m testMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cleanCustomer("customer-1"), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "slot in the past",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(futureSlot(10).AddDate(0, 0, -3)),
			setupMock: func(m testMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cleanCustomer("customer-1"), nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "concurrent booking hits the unique index",
			ctx:  customerCtx("customer-1"),
			req:  createRequest(at),
			setupMock: func(m testMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cleanCustomer("customer-1"), nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "staff booking is confirmed immediately",
			ctx:  staffCtx("staff-1"),
			req: func() dto.CreateAppointmentRequest {
				req := createRequest(at)
				req.UserID = "e7a3cbb4-3c43-4df0-9a2a-94e823e5f2e6"

				return req
			}(),
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, appointment model.Appointment) error {
						assert.Equal(t, model.StatusUpcoming, appointment.Status)
						assert.Equal(t, "e7a3cbb4-3c43-4df0-9a2a-94e823e5f2e6", appointment.UserID)

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	base := model.Appointment{
		ID:                  "appt-1",
		UserID:              "customer-1",
		Email:               "jane@example.com",
		ServiceCategory:     "Engine Oil",
		AppointmentDateTime: futureSlot(10),
	}

	tests := []struct {
		name      string
		status    string
		to        string
		setupMock func(m testMocks, appointment model.Appointment)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "upcoming to completed",
			status: model.StatusUpcoming,
			to:     model.StatusCompleted,
			setupMock: func(m testMocks, appointment model.Appointment) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "rescheduled to no arrival red tags the customer",
			status: model.StatusRescheduled,
			to:     model.StatusNoArrival,
			setupMock: func(m testMocks, appointment model.Appointment) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

				m.userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, true, fields[userModel.FieldIsRedTagged])
						assert.Contains(t, fields, userModel.FieldRedTagExpiresAt)

						return nil
					})
			},
		},
		{
			name:   "requested cannot jump to completed",
			status: model.StatusRequested,
			to:     model.StatusCompleted,
			setupMock: func(m testMocks, appointment model.Appointment) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "completed is frozen",
			status: model.StatusCompleted,
			to:     model.StatusCancelled,
			setupMock: func(m testMocks, appointment model.Appointment) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "no arrival is frozen",
			status: model.StatusNoArrival,
			to:     model.StatusUpcoming,
			setupMock: func(m testMocks, appointment model.Appointment) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			appointment := base
			appointment.Status = tt.status
			tt.setupMock(m, appointment)

			err := svc.UpdateStatus(staffCtx("staff-1"), dto.UpdateStatusRequest{Status: tt.to}, appointment.ID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_AcceptReject(t *testing.T) {
	requested := model.Appointment{
		ID:     "appt-1",
		UserID: "customer-1",
		Status: model.StatusRequested,
	}

	t.Run("accept confirms a requested appointment", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(requested, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusUpcoming, fields[model.FieldStatus])

				return nil
			})

		assert.NoError(t, svc.Accept(staffCtx("staff-1"), requested.ID))
	})

	t.Run("accept refuses a confirmed appointment", func(t *testing.T) {
		svc, m := newService(t)

		confirmed := requested
		confirmed.Status = model.StatusUpcoming

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)

		err := svc.Accept(staffCtx("staff-1"), confirmed.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("reject deletes the request outright", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(requested, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Reject(staffCtx("staff-1"), requested.ID))
	})

	t.Run("reject refuses a confirmed appointment", func(t *testing.T) {
		svc, m := newService(t)

		confirmed := requested
		confirmed.Status = model.StatusUpcoming

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)

		err := svc.Reject(staffCtx("staff-1"), confirmed.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAppointmentService_Cancel(t *testing.T) {
	t.Run("customer cancels their own request", func(t *testing.T) {
		svc, m := newService(t)

		appointment := model.Appointment{
			ID:     "appt-1",
			UserID: "customer-1",
			Status: model.StatusRequested,
		}

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

				return nil
			})

		assert.NoError(t, svc.Cancel(customerCtx("customer-1"), appointment.ID))
	})

	t.Run("customer cannot touch another customer's appointment", func(t *testing.T) {
		svc, m := newService(t)

		appointment := model.Appointment{
			ID:     "appt-1",
			UserID: "customer-2",
			Status: model.StatusRequested,
		}

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)

		err := svc.Cancel(customerCtx("customer-1"), appointment.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		svc, m := newService(t)

		appointment := model.Appointment{
			ID:     "appt-1",
			UserID: "customer-1",
			Status: model.StatusCompleted,
		}

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)

		err := svc.Cancel(customerCtx("customer-1"), appointment.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAppointmentService_Update(t *testing.T) {
	at := futureSlot(10)
	moved := futureSlot(14)

	base := model.Appointment{
		ID:                  "appt-1",
		UserID:              "customer-1",
		ServiceCategory:     "Engine Oil",
		AppointmentDateTime: at,
		Status:              model.StatusUpcoming,
	}

	t.Run("empty update request is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Update(staffCtx("staff-1"), dto.UpdateAppointmentRequest{}, base.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("terminal appointment is immutable", func(t *testing.T) {
		svc, m := newService(t)

		cancelled := base
		cancelled.Status = model.StatusCancelled

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		err := svc.Update(staffCtx("staff-1"), dto.UpdateAppointmentRequest{FirstName: "New"}, base.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("staff moving an upcoming appointment reschedules it", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(base, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Appointment{}, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusRescheduled, fields[model.FieldStatus])
				assert.Contains(t, fields, model.FieldAppointmentDateTime)

				return nil
			})

		req := dto.UpdateAppointmentRequest{AppointmentDateTime: moved.Format(time.RFC3339)}
		assert.NoError(t, svc.Update(staffCtx("staff-1"), req, base.ID))
	})

	t.Run("customer moving their request keeps it requested", func(t *testing.T) {
		svc, m := newService(t)

		requested := base
		requested.Status = model.StatusRequested

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(requested, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Appointment{}, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.NotContains(t, fields, model.FieldStatus)

				return nil
			})

		req := dto.UpdateAppointmentRequest{AppointmentDateTime: moved.Format(time.RFC3339)}
		assert.NoError(t, svc.Update(customerCtx("customer-1"), req, base.ID))
	})

	t.Run("moving to an occupied slot conflicts", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(base, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Appointment{{
				ID:                  "other-id",
				ServiceCategory:     "Engine Oil",
				AppointmentDateTime: moved,
				Status:              model.StatusUpcoming,
			}}, nil)

		req := dto.UpdateAppointmentRequest{AppointmentDateTime: moved.Format(time.RFC3339)}
		err := svc.Update(staffCtx("staff-1"), req, base.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("plain field update does not touch the slot", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(base, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.NotContains(t, fields, model.FieldStatus)
				assert.NotContains(t, fields, model.FieldAppointmentDateTime)

				return nil
			})

		assert.NoError(t, svc.Update(staffCtx("staff-1"), dto.UpdateAppointmentRequest{FirstName: "New"}, base.ID))
	})
}

func TestAppointmentService_GetSlots(t *testing.T) {
	day, err := timezone.Parse(constant.DateOnlyFormat, "2030-05-10")
	if err != nil {
		t.Fatalf("failed to parse test date: %v", err)
	}

	booked := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())

	t.Run("grid reflects booked appointments", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Appointment{{
				ID:                  "appt-1",
				ServiceCategory:     "Engine Oil",
				AppointmentDateTime: booked,
				Status:              model.StatusUpcoming,
			}}, nil)

		res, err := svc.GetSlots(context.Background(), "2030-05-10", "Engine Oil")
		require.NoError(t, err)

		assert.Equal(t, "2030-05-10", res.Date)
		require.Len(t, res.Slots, 11)

		byLabel := map[string]string{}
		for _, slot := range res.Slots {
			byLabel[slot.Label] = slot.Status
		}

		assert.Equal(t, "Booked", byLabel["9:00 AM"])
		assert.Equal(t, "Available", byLabel["10:00 AM"])
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.GetSlots(context.Background(), "10-05-2030", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.GetSlots(context.Background(), "2030-05-10", "")
		assert.NoError(t, err)
	})
}
