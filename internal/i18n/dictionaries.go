package i18n

var english = map[string]string{
	"home":                   "Home",
	"add_plant":              "Add Plant",
	"identify_plant":         "Identify Plant",
	"categories":             "Categories",
	"admin":                  "Admin",
	"search_placeholder":     "Search plants...",
	"welcome":                "Welcome to Virtual Herbal Garden",
	"discover":               "Discover the healing power of nature through our collection of medicinal plants",
	"view_details":           "View Details",
	"add_new_plant":          "Add New Plant",
	"identify_plant_btn":     "Identify Plant",
	"search":                 "Search",
	"cancel":                 "Cancel",
	"save":                   "Save",
	"edit":                   "Edit",
	"delete":                 "Delete",
	"scientific_name":        "Scientific Name",
	"family":                 "Family",
	"ayurvedic_name":         "Ayurvedic Name",
	"hindi_name":             "Hindi Name",
	"sanskrit_name":          "Sanskrit Name",
	"description":            "Description",
	"benefits":               "Health Benefits",
	"uses":                   "Common Uses",
	"medicinal_properties":   "Medicinal Properties",
	"therapeutic_uses":       "Therapeutic Uses",
	"culinary_uses":          "Culinary Uses",
	"growing_conditions":     "Growing Conditions",
	"precautions":            "Precautions",
	"side_effects":           "Side Effects",
	"rasa":                   "Rasa (Taste)",
	"guna":                   "Guna (Quality)",
	"virya":                  "Virya (Potency)",
	"vipaka":                 "Vipaka (Post-digestive effect)",
	"dosha":                  "Dosha Effect",
	"season":                 "Season",
	"water_requirements":     "Water Requirements",
	"sunlight_requirements":  "Sunlight Requirements",
	"soil_type":              "Soil Type",
	"climate":                "Climate",
	"medicinal_plants":       "Medicinal Plants",
	"aromatic_plants":        "Aromatic Plants",
	"spices":                 "Spices",
	"fruits":                 "Fruits",
	"vegetables":             "Vegetables",
	"herbs":                  "Herbs",
	"upload_plant_image":     "Upload Plant Image",
	"identification_results": "Identification Results",
	"confidence":             "Confidence",
	"similar_images":         "Similar Images",
	"match_found":            "Match Found in Database",
	"no_match":               "No Exact Match Found",
	"plant_added_success":    "Plant added successfully!",
	"identification_failed":  "Plant identification failed",
	"error_occurred":         "An error occurred",
	"plant_pending_approval": "Plant added successfully! It will be visible after admin approval.",
	"plant_approved":         "Plant approved",
	"plant_rejected":         "Plant rejected and removed",
	"access_denied":          "Access denied. Admin privileges required.",
	"login_required":         "Please log in to continue",
	"invalid_file_type":      "Invalid file type. Allowed: png, jpg, jpeg, gif",
	"no_image_selected":      "No image selected",
	"passwords_do_not_match": "Passwords do not match",
	"username_exists":        "Username already exists",
	"email_exists":           "Email already registered",
	"registration_success":   "Registration successful! Please login.",
	"invalid_credentials":    "Invalid username or password",
	"logout_success":         "You have been logged out successfully.",
	"not_found":              "Not found",
	"preferences_updated":    "Preferences updated",
}

var hindi = map[string]string{
	"home":                   "होम",
	"add_plant":              "पौधा जोड़ें",
	"identify_plant":         "पौधा पहचानें",
	"categories":             "श्रेणियाँ",
	"admin":                  "व्यवस्थापक",
	"search_placeholder":     "पौधे खोजें...",
	"welcome":                "वर्चुअल हर्बल गार्डन में आपका स्वागत है",
	"discover":               "हमारे औषधीय पौधों के संग्रह के माध्यम से प्रकृति की उपचार शक्ति की खोज करें",
	"view_details":           "विवरण देखें",
	"add_new_plant":          "नया पौधा जोड़ें",
	"identify_plant_btn":     "पौधा पहचानें",
	"search":                 "खोजें",
	"cancel":                 "रद्द करें",
	"save":                   "सहेजें",
	"edit":                   "संपादित करें",
	"delete":                 "हटाएं",
	"scientific_name":        "वैज्ञानिक नाम",
	"family":                 "परिवार",
	"ayurvedic_name":         "आयुर्वेदिक नाम",
	"hindi_name":             "हिंदी नाम",
	"sanskrit_name":          "संस्कृत नाम",
	"description":            "विवरण",
	"benefits":               "स्वास्थ्य लाभ",
	"uses":                   "सामान्य उपयोग",
	"medicinal_properties":   "औषधीय गुण",
	"therapeutic_uses":       "चिकित्सीय उपयोग",
	"culinary_uses":          "पाक उपयोग",
	"growing_conditions":     "उगाने की स्थितियाँ",
	"precautions":            "सावधानियाँ",
	"side_effects":           "दुष्प्रभाव",
	"rasa":                   "रस (स्वाद)",
	"guna":                   "गुण (गुणवत्ता)",
	"virya":                  "वीर्य (शक्ति)",
	"vipaka":                 "विपाक (पाचन के बाद प्रभाव)",
	"dosha":                  "दोष प्रभाव",
	"season":                 "मौसम",
	"water_requirements":     "पानी की आवश्यकता",
	"sunlight_requirements":  "सूरज की रोशनी की आवश्यकता",
	"soil_type":              "मिट्टी का प्रकार",
	"climate":                "जलवायु",
	"medicinal_plants":       "औषधीय पौधे",
	"aromatic_plants":        "सुगंधित पौधे",
	"spices":                 "मसाले",
	"fruits":                 "फल",
	"vegetables":             "सब्जियाँ",
	"herbs":                  "जड़ी-बूटियाँ",
	"upload_plant_image":     "पौधे की छवि अपलोड करें",
	"identification_results": "पहचान परिणाम",
	"confidence":             "आत्मविश्वास",
	"similar_images":         "समान छवियाँ",
	"match_found":            "डेटाबेस में मिलान मिला",
	"no_match":               "कोई सटीक मिलान नहीं मिला",
	"plant_added_success":    "पौधा सफलतापूर्वक जोड़ा गया!",
	"identification_failed":  "पौधा पहचान विफल",
	"error_occurred":         "एक त्रुटि हुई",
	"plant_pending_approval": "पौधा सफलतापूर्वक जोड़ा गया! व्यवस्थापक की स्वीकृति के बाद यह दिखाई देगा।",
	"plant_approved":         "पौधा स्वीकृत किया गया",
	"plant_rejected":         "पौधा अस्वीकृत और हटाया गया",
	"access_denied":          "पहुँच अस्वीकृत। व्यवस्थापक विशेषाधिकार आवश्यक हैं।",
	"login_required":         "जारी रखने के लिए कृपया लॉग इन करें",
	"invalid_file_type":      "अमान्य फ़ाइल प्रकार। अनुमत: png, jpg, jpeg, gif",
	"no_image_selected":      "कोई छवि चयनित नहीं",
	"passwords_do_not_match": "पासवर्ड मेल नहीं खाते",
	"username_exists":        "उपयोगकर्ता नाम पहले से मौजूद है",
	"email_exists":           "ईमेल पहले से पंजीकृत है",
	"registration_success":   "पंजीकरण सफल! कृपया लॉग इन करें।",
	"invalid_credentials":    "अमान्य उपयोगकर्ता नाम या पासवर्ड",
	"logout_success":         "आप सफलतापूर्वक लॉग आउट हो गए हैं।",
	"not_found":              "नहीं मिला",
	"preferences_updated":    "प्राथमिकताएँ अपडेट की गईं",
}

var spanish = map[string]string{
	"home":                   "Inicio",
	"add_plant":              "Agregar Planta",
	"identify_plant":         "Identificar Planta",
	"categories":             "Categorías",
	"admin":                  "Administrador",
	"search_placeholder":     "Buscar plantas...",
	"welcome":                "Bienvenido al Jardín Herbal Virtual",
	"discover":               "Descubre el poder curativo de la naturaleza a través de nuestra colección de plantas medicinales",
	"view_details":           "Ver Detalles",
	"add_new_plant":          "Agregar Nueva Planta",
	"identify_plant_btn":     "Identificar Planta",
	"search":                 "Buscar",
	"cancel":                 "Cancelar",
	"save":                   "Guardar",
	"edit":                   "Editar",
	"delete":                 "Eliminar",
	"scientific_name":        "Nombre Científico",
	"family":                 "Familia",
	"ayurvedic_name":         "Nombre Ayurvedico",
	"hindi_name":             "Nombre en Hindi",
	"sanskrit_name":          "Nombre en Sánscrito",
	"description":            "Descripción",
	"benefits":               "Beneficios de Salud",
	"uses":                   "Usos Comunes",
	"medicinal_properties":   "Propiedades Medicinales",
	"therapeutic_uses":       "Usos Terapéuticos",
	"culinary_uses":          "Usos Culinarios",
	"growing_conditions":     "Condiciones de Crecimiento",
	"precautions":            "Precauciones",
	"side_effects":           "Efectos Secundarios",
	"rasa":                   "Rasa (Sabor)",
	"guna":                   "Guna (Calidad)",
	"virya":                  "Virya (Potencia)",
	"vipaka":                 "Vipaka (Efecto post-digestivo)",
	"dosha":                  "Efecto Dosha",
	"season":                 "Temporada",
	"water_requirements":     "Requerimientos de Agua",
	"sunlight_requirements":  "Requerimientos de Luz Solar",
	"soil_type":              "Tipo de Suelo",
	"climate":                "Clima",
	"medicinal_plants":       "Plantas Medicinales",
	"aromatic_plants":        "Plantas Aromáticas",
	"spices":                 "Especias",
	"fruits":                 "Frutas",
	"vegetables":             "Verduras",
	"herbs":                  "Hierbas",
	"upload_plant_image":     "Subir Imagen de Planta",
	"identification_results": "Resultados de Identificación",
	"confidence":             "Confianza",
	"similar_images":         "Imágenes Similares",
	"match_found":            "Coincidencia Encontrada en la Base de Datos",
	"no_match":               "No se Encontró Coincidencia Exacta",
	"plant_added_success":    "¡Planta agregada exitosamente!",
	"identification_failed":  "Identificación de planta fallida",
	"error_occurred":         "Ocurrió un error",
	"plant_pending_approval": "¡Planta agregada exitosamente! Será visible después de la aprobación del administrador.",
	"plant_approved":         "Planta aprobada",
	"plant_rejected":         "Planta rechazada y eliminada",
	"access_denied":          "Acceso denegado. Se requieren privilegios de administrador.",
	"login_required":         "Inicia sesión para continuar",
	"invalid_file_type":      "Tipo de archivo no válido. Permitidos: png, jpg, jpeg, gif",
	"no_image_selected":      "No se seleccionó ninguna imagen",
	"passwords_do_not_match": "Las contraseñas no coinciden",
	"username_exists":        "El nombre de usuario ya existe",
	"email_exists":           "El correo electrónico ya está registrado",
	"registration_success":   "¡Registro exitoso! Por favor inicia sesión.",
	"invalid_credentials":    "Usuario o contraseña no válidos",
	"logout_success":         "Has cerrado sesión correctamente.",
	"not_found":              "No encontrado",
	"preferences_updated":    "Preferencias actualizadas",
}
