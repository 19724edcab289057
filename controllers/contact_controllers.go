package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fomosandwich/sandwich-cart/utils"
)

type ContactController struct{}

func NewContactController() *ContactController {
	return &ContactController{}
}

type operatingHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type contactInfo struct {
	Whatsapp       string           `json:"whatsapp"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	Instagram      string           `json:"instagram"`
	Tiktok         string           `json:"tiktok"`
	LocationLabel  string           `json:"locationLabel"`
	OperatingHours []operatingHours `json:"operatingHours"`
}

var cartContactInfo = contactInfo{
	Whatsapp:      "6285759189625",
	Phone:         "+62 857-5918-9625",
	Email:         "hello@fomosandwich.id",
	Instagram:     "https://instagram.com/fomo.sandwiches",
	Tiktok:        "https://www.tiktok.com/@fomosandwich",
	LocationLabel: "Jl. Kuliner No. 12, Jakarta",
	OperatingHours: []operatingHours{
		{Days: "Mon – Thu", Hours: "09:00 – 18:00"},
		{Days: "Fri – Sat", Hours: "09:00 – 21:00"},
		{Days: "Sunday", Hours: "Closed (events only)"},
	},
}

// GetContactInfo -> info kontak dan jam buka cart
func (cc *ContactController) GetContactInfo(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Contact information", cartContactInfo)
}
