package main

import (
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"strings"

	"staffdir/pkg/domain"
	"staffdir/pkg/i18n"
	"staffdir/pkg/store"
)

// mustSubLocales exposes the embedded locale files rooted at their
// directory, the layout i18n.Load expects.
func mustSubLocales() fs.FS {
	sub, err := fs.Sub(i18n.EmbeddedLocales, "locales")
	if err != nil {
		log.Fatalf("Failed to open embedded locales: %v", err)
	}
	return sub
}

var (
	seedFirstNames = []string{
		"Ahmet", "Mehmet", "Mustafa", "Ali", "Hüseyin", "Hasan", "İbrahim",
		"Osman", "Murat", "Yusuf", "Ömer", "Eren", "Can", "Kerem", "Emir",
		"Deniz", "Arda", "Burak", "Fatma", "Ayşe", "Emine", "Zeynep", "Elif",
		"Meryem", "Zehra", "Yasemin", "Rabia", "Ebru", "Derya", "Gamze",
	}
	seedLastNames = []string{
		"Yılmaz", "Kaya", "Demir", "Çelik", "Şahin", "Yıldız", "Yıldırım",
		"Öztürk", "Aydın", "Özdemir", "Arslan", "Doğan", "Kılıç", "Çetin",
		"Kara", "Koç", "Kurt", "Şen", "Aksoy", "Polat", "Bulut", "Korkmaz",
	}
	seedDepartments = []domain.Department{
		domain.DepartmentAnalytics, domain.DepartmentTech,
		domain.DepartmentHR, domain.DepartmentMarketing,
	}
	seedPositions = []domain.Position{
		domain.PositionJunior, domain.PositionMedior,
		domain.PositionSenior, domain.PositionManager,
	}
)

// seedEmployees fills an empty directory with plausible sample records
// through the normal Add path, so persistence and notifications behave
// exactly as they would for real input. Emails are derived from the
// names with a counter to keep them unique.
func seedEmployees(st *store.Store, n int) {
	for i := 0; i < n; i++ {
		first := seedFirstNames[rand.Intn(len(seedFirstNames))]
		last := seedLastNames[rand.Intn(len(seedLastNames))]

		birthYear := 1960 + rand.Intn(40)
		employmentYear := max(birthYear+18, 2000+rand.Intn(24))

		if _, err := st.Add(domain.Employee{
			FirstName:        first,
			LastName:         last,
			Email:            fmt.Sprintf("%s.%s%d@example.com", asciiFold(first), asciiFold(last), i),
			Phone:            fmt.Sprintf("5%02d-%03d-%02d-%02d", rand.Intn(100), 100+rand.Intn(900), 10+rand.Intn(90), 10+rand.Intn(90)),
			DateOfBirth:      fmt.Sprintf("%d-%02d-%02d", birthYear, 1+rand.Intn(12), 1+rand.Intn(28)),
			DateOfEmployment: fmt.Sprintf("%d-%02d-%02d", employmentYear, 1+rand.Intn(12), 1+rand.Intn(28)),
			Department:       seedDepartments[rand.Intn(len(seedDepartments))],
			Position:         seedPositions[rand.Intn(len(seedPositions))],
		}); err != nil {
			log.Printf("ERROR: Seeding employee %d failed: %v", i, err)
			return
		}
	}
}

var turkishFolder = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

// asciiFold lowercases a name and folds Turkish letters so the derived
// email stays plain ASCII.
func asciiFold(name string) string {
	return strings.ToLower(turkishFolder.Replace(name))
}
