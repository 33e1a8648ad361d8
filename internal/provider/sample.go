package provider

import "github.com/kauntidev/kaunti/internal/model"

// SampleDataset returns the canned dataset behind demo mode and tests.
// Amounts are KSh millions and intentionally illustrative; populations are
// rounded census figures. Lamu and Isiolo are left out on purpose so the
// dashboard has somewhere to show its no-data shade.
func SampleDataset() model.Dataset {
	records := []model.Record{
		sample("KE-01", "Mombasa", 1_208_000, 14200, 12950, 1840, 9100, 4350, model.AuditQualified, "Unsupported pending bills balance"),
		sample("KE-02", "Kwale", 867_000, 8800, 8100, 420, 1900, 800, model.AuditQualified, ""),
		sample("KE-03", "Kilifi", 1_454_000, 13100, 11800, 760, 2600, 1500, model.AuditQualified, ""),
		sample("KE-04", "Tana River", 316_000, 6400, 5300, 150, 1200, 650, model.AuditPending, ""),
		sample("KE-06", "Taita Taveta", 341_000, 5700, 5200, 310, 1400, 700, model.AuditAdverse, "Payroll costs above ceiling with unexplained variances"),
		sample("KE-07", "Garissa", 841_000, 8600, 7700, 190, 1700, 950, model.AuditDisclaimer, "Records not produced for audit"),
		sample("KE-08", "Wajir", 781_000, 10400, 9100, 160, 2100, 1200, model.AuditQualified, ""),
		sample("KE-09", "Mandera", 867_000, 11500, 10200, 180, 1900, 1000, model.AuditQualified, ""),
		sample("KE-10", "Marsabit", 460_000, 7700, 6800, 170, 1500, 600, model.AuditQualified, ""),
		sample("KE-12", "Meru", 1_546_000, 11200, 10300, 940, 2800, 1600, model.AuditQualified, ""),
		sample("KE-13", "Tharaka Nithi", 393_000, 5100, 4700, 260, 900, 400, model.AuditClean, ""),
		sample("KE-14", "Embu", 609_000, 6100, 5500, 480, 1300, 700, model.AuditQualified, ""),
		sample("KE-15", "Kitui", 1_136_000, 10900, 9600, 520, 2200, 1100, model.AuditQualified, ""),
		sample("KE-16", "Machakos", 1_422_000, 12300, 11000, 1350, 4800, 2700, model.AuditQualified, ""),
		sample("KE-17", "Makueni", 988_000, 8400, 8000, 610, 900, 350, model.AuditClean, ""),
		sample("KE-18", "Nyandarua", 638_000, 6500, 6000, 390, 1000, 450, model.AuditClean, ""),
		sample("KE-19", "Nyeri", 759_000, 8200, 7600, 720, 1600, 800, model.AuditClean, ""),
		sample("KE-20", "Kirinyaga", 610_000, 6200, 5800, 540, 1100, 500, model.AuditQualified, ""),
		sample("KE-21", "Murang'a", 1_057_000, 8900, 8100, 620, 1800, 900, model.AuditQualified, ""),
		sample("KE-22", "Kiambu", 2_418_000, 17500, 15400, 2900, 7200, 4100, model.AuditQualified, "Own-source revenue understated in quarterly returns"),
		sample("KE-23", "Turkana", 927_000, 12800, 10900, 210, 2400, 1300, model.AuditDisclaimer, "Imprest and asset registers unavailable"),
		sample("KE-24", "West Pokot", 621_000, 6300, 5700, 180, 1100, 500, model.AuditQualified, ""),
		sample("KE-25", "Samburu", 310_000, 5400, 4800, 200, 800, 350, model.AuditPending, ""),
		sample("KE-26", "Trans Nzoia", 990_000, 7900, 7200, 430, 1700, 850, model.AuditQualified, ""),
		sample("KE-27", "Uasin Gishu", 1_163_000, 9200, 8500, 1150, 2300, 1200, model.AuditQualified, ""),
		sample("KE-28", "Elgeyo Marakwet", 454_000, 5200, 4900, 240, 700, 300, model.AuditClean, ""),
		sample("KE-29", "Nandi", 886_000, 7400, 6800, 380, 1300, 600, model.AuditQualified, ""),
		sample("KE-30", "Baringo", 667_000, 6900, 6200, 290, 1200, 550, model.AuditQualified, ""),
		sample("KE-31", "Laikipia", 519_000, 5900, 5500, 470, 1000, 400, model.AuditClean, ""),
		sample("KE-32", "Nakuru", 2_162_000, 16800, 15100, 2400, 5600, 3200, model.AuditQualified, ""),
		sample("KE-33", "Narok", 1_158_000, 10100, 8900, 1750, 2000, 950, model.AuditQualified, ""),
		sample("KE-34", "Kajiado", 1_118_000, 8700, 7900, 980, 2600, 1400, model.AuditQualified, ""),
		sample("KE-35", "Kericho", 902_000, 7600, 7000, 410, 1400, 650, model.AuditQualified, ""),
		sample("KE-36", "Bomet", 876_000, 6800, 6300, 330, 1200, 550, model.AuditAdverse, "Expenditure outside the approved budget"),
		sample("KE-37", "Kakamega", 1_868_000, 14000, 13100, 890, 2700, 1400, model.AuditClean, ""),
		sample("KE-38", "Vihiga", 590_000, 5800, 5300, 250, 1000, 450, model.AuditQualified, ""),
		sample("KE-39", "Bungoma", 1_671_000, 11000, 9900, 580, 2500, 1300, model.AuditQualified, ""),
		sample("KE-40", "Busia", 894_000, 7300, 6500, 340, 1600, 850, model.AuditDisclaimer, "Bank reconciliations not supported"),
		sample("KE-41", "Siaya", 993_000, 7200, 6700, 360, 1300, 600, model.AuditQualified, ""),
		sample("KE-42", "Kisumu", 1_156_000, 9800, 8600, 1050, 3900, 2300, model.AuditAdverse, "Stalled projects paid for in full"),
		sample("KE-43", "Homa Bay", 1_132_000, 8300, 7400, 310, 1800, 950, model.AuditQualified, ""),
		sample("KE-44", "Migori", 1_116_000, 8100, 7300, 350, 1700, 900, model.AuditQualified, ""),
		sample("KE-45", "Kisii", 1_267_000, 10300, 9400, 560, 2200, 1200, model.AuditQualified, ""),
		sample("KE-46", "Nyamira", 606_000, 5600, 5100, 230, 900, 400, model.AuditPending, ""),
		sample("KE-47", "Nairobi City", 4_397_000, 42000, 36800, 10300, 86000, 99000, model.AuditDisclaimer, "Pending bills and legacy debt unreconciled"),
	}

	return model.NewDataset(records)
}

func sample(id, name string, population int64, allocated, spent, osr, debt, bills float64, status model.AuditStatus, note string) model.Record {
	return model.Record{
		ID:         id,
		Name:       name,
		FiscalYear: "2023/24",
		Population: population,
		Budget: model.Budget{
			Allocated:        allocated,
			Spent:            spent,
			OwnSourceRevenue: osr,
		},
		Debt: model.Debt{
			Outstanding:  debt,
			PendingBills: bills,
		},
		Audit: model.Audit{
			Status: status,
			Note:   note,
		},
	}
}
