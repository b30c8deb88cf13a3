package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/pkg/money"
	"gorm.io/gorm"
)

// SeedDemoData loads a small demo data set for development. It only
// runs against an empty customers table so restarts stay idempotent.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding demo data")

	names := []string{"김철수", "이영희", "박지성", "최동원", "정우성"}
	companies := []string{"삼성전자", "LG화학", "현대자동차", "네이버", "카카오"}
	statuses := []enum.CustomerStatus{
		enum.CustomerStatusActive,
		enum.CustomerStatusInactive,
		enum.CustomerStatusPending,
	}

	customers := make([]entity.Customer, 0, len(names))
	for i, name := range names {
		email := fmt.Sprintf("customer%d@example.com", i+1)
		company := companies[i]
		customer := entity.Customer{
			Name:    name,
			Email:   &email,
			Company: &company,
			Status:  statuses[i%len(statuses)],
		}
		if err := db.Create(&customer).Error; err != nil {
			return err
		}
		customers = append(customers, customer)
	}

	inquiryTitles := []string{"서비스 이용 관련 문의드립니다.", "결제 내역 확인 부탁드립니다."}
	inquiryTypes := []string{"기술지원", "일반문의", "결제/환불"}
	for i := 0; i < 5; i++ {
		customer := customers[i%len(customers)]
		inquiry := entity.Inquiry{
			Title:      inquiryTitles[i%len(inquiryTitles)],
			Content:    "안녕하세요, 서비스를 이용하던 중 궁금한 점이 있어 문의드립니다.",
			AuthorName: customer.Name,
			CustomerID: &customer.ID,
			Type:       inquiryTypes[i%len(inquiryTypes)],
			Status:     enum.InquiryStatus(i % 3),
		}
		if err := db.Create(&inquiry).Error; err != nil {
			return err
		}
	}

	services := []string{"웹사이트 리뉴얼", "모바일 앱 구축", "ERP 유지보수", "UI/UX 디자인"}
	for i, svc := range services {
		status := enum.TransactionStatusCompleted
		if i == 0 {
			status = enum.TransactionStatusPending
		}
		tx := entity.Transaction{
			ServiceType: svc,
			Amount:      money.KRW(1_000_000 * int64(i+2)),
			CustomerID:  &customers[i%len(customers)].ID,
			Status:      status,
			Date:        time.Now().AddDate(0, 0, -i*7),
		}
		if err := db.Create(&tx).Error; err != nil {
			return err
		}
	}

	log.Info().Msg("demo data seeded")
	return nil
}
