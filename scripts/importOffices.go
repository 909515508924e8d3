package main

import (
	"encoding/csv"
	"log"
	"os"
	"strings"

	"vahan/config"
	"vahan/database"
	"vahan/models"
)

// Imports the national RTO office master list from OfficeMaster.csv.
// Expected headers: code, name, state, district, address, phone, email.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("OfficeMaster.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(strings.ToLower(h))] = i
	}

	db := database.Database.Db

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 && i > 0 {
			log.Printf("Processing row %d...", i+1)
		}

		code := strings.ToUpper(getField(row, headerIndex, "code"))
		if code == "" {
			skipped++
			continue
		}

		office := models.RtoOffice{
			Code:     code,
			Name:     getField(row, headerIndex, "name"),
			State:    getField(row, headerIndex, "state"),
			District: getField(row, headerIndex, "district"),
			Address:  getField(row, headerIndex, "address"),
			Phone:    getField(row, headerIndex, "phone"),
			Email:    getField(row, headerIndex, "email"),
			Status:   models.OfficeStatusActive,
		}

		var existing models.RtoOffice
		if err := db.Where("code = ?", code).First(&existing).Error; err == nil {
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"name":     office.Name,
				"state":    office.State,
				"district": office.District,
				"address":  office.Address,
				"phone":    office.Phone,
				"email":    office.Email,
			}).Error; err != nil {
				log.Printf("Failed to update office %s: %v", code, err)
				skipped++
				continue
			}
			updated++
			continue
		}

		if err := db.Create(&office).Error; err != nil {
			log.Printf("Failed to insert office %s: %v", code, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete. Inserted: %d, Updated: %d, Skipped: %d", inserted, updated, skipped)
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
