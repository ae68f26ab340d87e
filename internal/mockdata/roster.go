package mockdata

import "mrtrack/internal/domain"

func geo(lat, lng float64) *domain.GeoPoint {
	return &domain.GeoPoint{Lat: lat, Lng: lng}
}

// Doctors is the demo roster around Mumbai, Thane and Navi Mumbai.
func Doctors() []domain.Doctor {
	return []domain.Doctor{
		{ID: "d1", Name: "Dr. Rajesh Sharma", Qualification: "MBBS, MD", Specialization: "Cardiologist", Town: "Mumbai", Area: "Andheri West", CreatedAt: "2024-01-15", Location: geo(19.1362, 72.8296)},
		{ID: "d2", Name: "Dr. Priya Patel", Qualification: "MBBS, DNB", Specialization: "General Physician", Town: "Mumbai", Area: "Bandra", CreatedAt: "2024-01-20", Location: geo(19.0596, 72.8295)},
		{ID: "d3", Name: "Dr. Amit Mehta", Qualification: "MBBS, MD", Specialization: "Pediatrician", Town: "Thane", Area: "Ghodbunder Road", CreatedAt: "2024-02-01", Location: geo(19.2183, 72.9781)},
		{ID: "d4", Name: "Dr. Sunita Singh", Qualification: "MBBS, MS", Specialization: "Orthopedic", Town: "Navi Mumbai", Area: "Vashi", CreatedAt: "2024-02-10", Location: geo(19.0771, 72.9987)},
		{ID: "d5", Name: "Dr. Vikram Gupta", Qualification: "MBBS, MD", Specialization: "Dermatologist", Town: "Mumbai", Area: "Powai", CreatedAt: "2024-02-15", Location: geo(19.1176, 72.9060)},
		{ID: "d6", Name: "Dr. Neha Kapoor", Qualification: "MBBS, DM", Specialization: "Neurologist", Town: "Mumbai", Area: "Goregaon", CreatedAt: "2024-03-01", Location: geo(19.1555, 72.8494)},
		{ID: "d7", Name: "Dr. Arjun Reddy", Qualification: "MBBS, MD", Specialization: "Gastroenterologist", Town: "Thane", Area: "Kalyan", CreatedAt: "2024-03-10", Location: geo(19.2437, 73.1355)},
		{ID: "d8", Name: "Dr. Kavita Joshi", Qualification: "MBBS, MD", Specialization: "Endocrinologist", Town: "Navi Mumbai", Area: "Nerul", CreatedAt: "2024-03-15", Location: geo(19.0330, 73.0169)},
		{ID: "d9", Name: "Dr. Sanjay Deshmukh", Qualification: "MBBS, MS", Specialization: "Surgeon", Town: "Mumbai", Area: "Dadar", CreatedAt: "2024-03-20", Location: geo(19.0176, 72.8426)},
		{ID: "d10", Name: "Dr. Meera Kulkarni", Qualification: "MBBS, MD", Specialization: "Gynecologist", Town: "Mumbai", Area: "Kurla", CreatedAt: "2024-04-01", Location: geo(19.0726, 72.8845)},
	}
}

// Products is the demo product catalogue.
func Products() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Cardiocare Plus", Category: "Cardiac", Status: domain.ProductStatusActive, Description: "Heart health supplement"},
		{ID: "p2", Name: "Neurofit 500", Category: "Neurology", Status: domain.ProductStatusActive, Description: "Nerve health supplement"},
		{ID: "p3", Name: "Gastrowell", Category: "Gastro", Status: domain.ProductStatusActive, Description: "Digestive health"},
		{ID: "p4", Name: "Dermashine", Category: "Derma", Status: domain.ProductStatusActive, Description: "Skin care supplement"},
		{ID: "p5", Name: "Orthomax", Category: "Orthopedic", Status: domain.ProductStatusActive, Description: "Joint health"},
		{ID: "p6", Name: "Diabetrol", Category: "Diabetes", Status: domain.ProductStatusActive, Description: "Blood sugar management"},
		{ID: "p7", Name: "Immunoboost", Category: "General", Status: domain.ProductStatusActive, Description: "Immunity booster"},
		{ID: "p8", Name: "Calcivit D3", Category: "General", Status: domain.ProductStatusInactive, Description: "Calcium and Vitamin D3"},
		{ID: "p9", Name: "Livergard", Category: "Gastro", Status: domain.ProductStatusActive, Description: "Liver protection formula"},
		{ID: "p10", Name: "Respira Plus", Category: "Respiratory", Status: domain.ProductStatusActive, Description: "Respiratory health"},
	}
}

// FieldReps is the demo rep roster.
func FieldReps() []domain.FieldRep {
	return []domain.FieldRep{
		{ID: "mr1", Name: "Rahul Kumar", Username: "rahul.kumar", Email: "rahul@riddhi.com", Phone: "9876543210", Territory: "Mumbai West", HQ: "Andheri", Status: domain.FieldRepStatusActive, JoinedDate: "2023-06-01"},
		{ID: "mr2", Name: "Sneha Desai", Username: "sneha.desai", Email: "sneha@riddhi.com", Phone: "9876543211", Territory: "Thane", HQ: "Thane", Status: domain.FieldRepStatusActive, JoinedDate: "2023-07-15"},
		{ID: "mr3", Name: "Vikash Yadav", Username: "vikash.yadav", Email: "vikash@riddhi.com", Phone: "9876543212", Territory: "Navi Mumbai", HQ: "Vashi", Status: domain.FieldRepStatusActive, JoinedDate: "2023-08-01"},
		{ID: "mr4", Name: "Pooja Sharma", Username: "pooja.sharma", Email: "pooja@riddhi.com", Phone: "9876543213", Territory: "Mumbai East", HQ: "Kurla", Status: domain.FieldRepStatusInactive, JoinedDate: "2023-09-10"},
	}
}

// shop is a chemist a rep may call on after the day's doctor visits.
type shop struct {
	name, area, contact string
}

var shops = []shop{
	{"Apollo Pharmacy", "Andheri West", "Mr. Shah"},
	{"Wellness Forever", "Bandra", "Ms. Fernandes"},
	{"MedPlus", "Thane West", "Mr. Patil"},
	{"Noble Chemists", "Vashi", "Mr. Iyer"},
	{"Sai Medical", "Kurla", ""},
}
