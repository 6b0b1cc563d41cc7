package entity

import (
	"testing"
	"time"

	"github.com/almadina/pos-api/internal/domain/enum"
)

func TestEmployeeMonthlyCost(t *testing.T) {
	tests := []struct {
		name       string
		salaryType enum.SalaryType
		salary     int64
		year       int
		month      time.Month
		want       int64
	}{
		{"monthly salary counts once", enum.SalaryTypeMonthly, 4000000, 2026, time.June, 4000000},
		{"daily salary over 30-day month", enum.SalaryTypeDaily, 50000, 2026, time.June, 1500000},
		{"daily salary over 31-day month", enum.SalaryTypeDaily, 50000, 2026, time.July, 1550000},
		{"daily salary over february", enum.SalaryTypeDaily, 45000, 2026, time.February, 1260000},
		{"daily salary over leap february", enum.SalaryTypeDaily, 45000, 2028, time.February, 1305000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Employee{
				Name:       "Test",
				SalaryType: tt.salaryType,
				Salary:     tt.salary,
			}
			got := e.MonthlyCost(tt.year, tt.month)
			if got != tt.want {
				t.Errorf("MonthlyCost(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}
