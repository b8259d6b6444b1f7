package controllers

import (
	"net/http"
	"strconv"
	"time"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/models"
	"go-postgres-carbooks/utils"

	"github.com/gin-gonic/gin"
)

// ListLeaseCollections lists amounts due from leasing companies, oldest first.
// ?collected=true/false narrows the list.
func ListLeaseCollections(c *gin.Context) {
	q := config.DB.Order("created_at ASC, id ASC")

	if collected := c.Query("collected"); collected != "" {
		q = q.Where("collected = ?", collected == "true")
	}
	if chassis := c.Query("chassis"); chassis != "" {
		q = q.Where("chassis_no = ?", chassis)
	}

	var rows []models.LeaseCollection
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load lease collections", "error": err.Error()})
		return
	}

	var outstanding float64
	for _, r := range rows {
		if !r.Collected {
			outstanding += r.AmountDue
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "outstanding_total": outstanding})
}

type CollectInput struct {
	ChequeAmount       float64    `json:"cheque_amount"`
	ChequeNo           string     `json:"cheque_no"`
	PersonalLoanAmount float64    `json:"personal_loan_amount"`
	Note               string     `json:"note"`
	CollectedDate      *time.Time `json:"collected_date"`
}

// CollectLease marks a lease collection settled with its cheque/personal-loan
// breakdown.
func CollectLease(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var lease models.LeaseCollection
	if err := config.DB.First(&lease, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Lease collection not found"})
		return
	}
	if lease.Collected {
		c.JSON(http.StatusConflict, gin.H{"message": "Already collected"})
		return
	}

	var in CollectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	collectedAt := time.Now()
	if in.CollectedDate != nil {
		collectedAt = *in.CollectedDate
	}

	updates := map[string]any{
		"collected":            true,
		"collected_date":       &collectedAt,
		"cheque_amount":        in.ChequeAmount,
		"cheque_no":            in.ChequeNo,
		"personal_loan_amount": in.PersonalLoanAmount,
		"note":                 in.Note,
		"updated_at":           time.Now(),
	}
	if err := config.DB.Model(&lease).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update lease collection", "error": err.Error()})
		return
	}
	utils.Success(c, "Lease collection settled", lease)
}
