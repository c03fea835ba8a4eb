package event_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	eventDatamodel "github.com/expenso-app/expenso/internal/core/datamodel/event"
	"github.com/expenso-app/expenso/internal/event"
	eventPostgres "github.com/expenso-app/expenso/internal/event/postgres"
	"github.com/expenso-app/expenso/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Event Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&eventDatamodel.SharedEvent{}, &eventDatamodel.SharedExpense{})
		Expect(err).NotTo(HaveOccurred())

		repo := eventPostgres.NewEventRepository(db)
		service := event.NewService(repo, nil, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler := event.NewHandler(baseHandler, service)

		router = chi.NewRouter()
		router.Route("/shared-events", func(sr chi.Router) {
			sr.Get("/", handler.ListEvents)
			sr.Post("/", handler.CreateEvent)
			sr.Route("/{shareCode}", func(cr chi.Router) {
				cr.Get("/", handler.GetEvent)
				cr.Patch("/deactivate", handler.DeactivateEvent)
				cr.Get("/expenses", handler.ListExpenses)
				cr.Post("/expenses", handler.AddExpense)
			})
		})
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	createEvent := func(name string) event.Event {
		body := `{"name": "` + name + `", "description": "Beach week"}`
		req := httptest.NewRequest(http.MethodPost, "/shared-events/", strings.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var created event.Event
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		return created
	}

	addHotelExpense := func(shareCode string) *httptest.ResponseRecorder {
		body := `{
			"description": "Hotel booking",
			"amount": 4000,
			"paidBy": "Rahul",
			"splitBetween": ["Rahul", "Priya", "Amit"],
			"date": "2024-03-15",
			"category": "Accommodation",
			"paymentMode": "UPI",
			"createdBy": "Rahul"
		}`
		req := httptest.NewRequest(http.MethodPost, "/shared-events/"+shareCode+"/expenses", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("POST /shared-events", func() {
		It("should create an event and return a shareable code", func() {
			created := createEvent("Goa Trip")

			Expect(created.ID).ToNot(BeEmpty())
			Expect(created.Name).To(Equal("Goa Trip"))
			Expect(created.ShareCode).To(MatchRegexp(`^[A-Z0-9]{6}$`))
			Expect(created.IsActive).To(BeTrue())
		})

		It("should reject a payload without a name", func() {
			req := httptest.NewRequest(http.MethodPost, "/shared-events/", strings.NewReader(`{"description": "no name"}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/shared-events/", strings.NewReader(`{not json`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			var errResp map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&errResp)).To(Succeed())
			Expect(errResp).To(HaveKey("message"))
		})
	})

	Describe("POST /shared-events/{shareCode}/expenses", func() {
		It("should append an expense through the share code without any auth", func() {
			created := createEvent("Goa Trip")

			w := addHotelExpense(created.ShareCode)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var exp event.SharedExpense
			Expect(json.NewDecoder(w.Body).Decode(&exp)).To(Succeed())
			Expect(exp.ID).ToNot(BeEmpty())
			Expect(exp.EventID).To(Equal(created.ID))
			Expect(exp.Amount.Equal(decimal.NewFromInt(4000))).To(BeTrue())
			Expect(exp.SplitBetween).To(Equal([]string{"Rahul", "Priya", "Amit"}))
		})

		It("should return 404 for an unknown share code", func() {
			w := addHotelExpense("ZZZZZZ")

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /shared-events", func() {
		It("should list active events with expense count and total amount", func() {
			created := createEvent("Goa Trip")
			Expect(addHotelExpense(created.ShareCode).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodGet, "/shared-events/", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var summaries []event.EventSummary
			Expect(json.NewDecoder(w.Body).Decode(&summaries)).To(Succeed())
			Expect(summaries).To(HaveLen(1))
			Expect(summaries[0].ShareCode).To(Equal(created.ShareCode))
			Expect(summaries[0].ExpenseCount).To(Equal(int64(1)))
			Expect(summaries[0].TotalAmount.Equal(decimal.NewFromInt(4000))).To(BeTrue())
		})
	})

	Describe("GET /shared-events/{shareCode}", func() {
		It("should return the event with the ordered expense list", func() {
			created := createEvent("Goa Trip")
			Expect(addHotelExpense(created.ShareCode).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodGet, "/shared-events/"+created.ShareCode+"/", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var detail event.EventDetail
			Expect(json.NewDecoder(w.Body).Decode(&detail)).To(Succeed())
			Expect(detail.Name).To(Equal("Goa Trip"))
			Expect(detail.Expenses).To(HaveLen(1))
			Expect(detail.Expenses[0].Description).To(Equal("Hotel booking"))
		})

		It("should return 404 for an unknown share code", func() {
			req := httptest.NewRequest(http.MethodGet, "/shared-events/ZZZZZZ/", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("PATCH /shared-events/{shareCode}/deactivate", func() {
		It("should revoke the code so later lookups return 404", func() {
			created := createEvent("Goa Trip")

			req := httptest.NewRequest(http.MethodPatch, "/shared-events/"+created.ShareCode+"/deactivate", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))

			req = httptest.NewRequest(http.MethodGet, "/shared-events/"+created.ShareCode+"/", nil)
			w = httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusNotFound))

			Expect(addHotelExpense(created.ShareCode).Code).To(Equal(http.StatusNotFound))
		})
	})
})
