package productController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// POST /admin/products/import-excel
//
// Expects the column layout produced by ExportProductsToExcel. Rows with a
// known title update the existing product; new titles are created. Rows that
// fail to parse are skipped, not fatal.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			categoryID, errCat := strconv.ParseUint(get(1), 10, 64)
			title := get(2)
			brand := get(3)
			description := get(4)
			price, errPrice := decimal.NewFromString(get(5))
			imageURL := get(6)
			inStock, errStock := strconv.ParseBool(get(7))

			if title == "" || errCat != nil || errPrice != nil {
				skippedCount++
				continue
			}
			if errStock != nil {
				inStock = true
			}

			var existing models.Product
			err := db.Where("title = ?", title).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				product := models.Product{
					CategoryID:  uint(categoryID),
					Title:       title,
					Brand:       brand,
					Description: description,
					Price:       price,
					ImageURL:    imageURL,
					InStock:     inStock,
				}
				if db.Create(&product).Error != nil {
					skippedCount++
					continue
				}
				createdCount++
				continue
			}
			if err != nil {
				skippedCount++
				continue
			}

			updates := map[string]interface{}{
				"category_id": uint(categoryID),
				"brand":       brand,
				"description": description,
				"price":       price,
				"image_url":   imageURL,
				"in_stock":    inStock,
			}
			if db.Model(&existing).Updates(updates).Error != nil {
				skippedCount++
				continue
			}
			updatedCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
