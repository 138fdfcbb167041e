package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"resort-backend/services"
	"resort-backend/utils"
)

const dateLayout = "2006-01-02"

// ReservationController drives the guarded reservation write path.
type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

type reservationRequest struct {
	StayStartAt     string         `json:"stayStartAt" binding:"required"`
	StayEndAt       string         `json:"stayEndAt" binding:"required"`
	RoomIDs         []uint         `json:"roomIds"`
	GuestName       string         `json:"guestName"`
	GuestEmail      string         `json:"guestEmail"`
	NumberOfGuests  int            `json:"numberOfGuests"`
	GuestList       datatypes.JSON `json:"guestList"`
	Status          string         `json:"status"`
	TotalAmount     float64        `json:"totalAmount"`
	PaymentMethodID *uint          `json:"paymentMethodId"`
}

// toInput validates dates up front: the availability core assumes validated
// windows and is never handed a start-after-end range.
func (req reservationRequest) toInput() (services.ReservationInput, error) {
	start, err := time.Parse(dateLayout, req.StayStartAt)
	if err != nil {
		return services.ReservationInput{}, errors.New("stayStartAt must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.StayEndAt)
	if err != nil {
		return services.ReservationInput{}, errors.New("stayEndAt must be YYYY-MM-DD")
	}
	if start.After(end) {
		return services.ReservationInput{}, services.ErrInvalidStayWindow
	}

	guests := req.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	return services.ReservationInput{
		StayStartAt:     start,
		StayEndAt:       end,
		RoomIDs:         req.RoomIDs,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		NumberOfGuests:  guests,
		GuestList:       req.GuestList,
		Status:          req.Status,
		TotalAmount:     req.TotalAmount,
		PaymentMethodID: req.PaymentMethodID,
	}, nil
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := rc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.GetByID(id)
	if err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := rc.Service.Create(input)
	if err != nil {
		writeReservationError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := rc.Service.Update(id, input)
	if err != nil {
		writeReservationError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "reservation deleted"})
}

// writeReservationError keeps conflict responses uniform whether the clash
// was caught by the guard or by the storage unique index at commit time.
func writeReservationError(c *gin.Context, err error) {
	var unavailable *services.RoomsUnavailableError
	switch {
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{
			"success":     false,
			"error":       unavailable.Error(),
			"roomNumbers": unavailable.RoomNumbers,
		})
	case errors.Is(err, services.ErrInvalidStayWindow):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "referenced record not found")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to save reservation")
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
