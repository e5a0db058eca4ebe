package seed

import "s2dio.backend/internal/domain/entities"

func defaultSections() []*entities.Section {
	return []*entities.Section{
		{
			Name:         "hero",
			Title:        "Construimos el futuro digital",
			Subtitle:     "Somos un estudio especializado en desarrollo web y software",
			Content:      "Transformamos ideas en experiencias digitales excepcionales con tecnología de vanguardia.",
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			Name:         "about",
			Title:        "Nosotros",
			Subtitle:     "Un equipo apasionado por la tecnología",
			Content:      "<p>En <strong>S2dio</strong> combinamos creatividad y tecnología para crear soluciones digitales que impulsan el crecimiento de nuestros clientes.</p><p>Desde 2020, hemos trabajado con empresas de diversos sectores, ayudándolas a transformar sus procesos y alcanzar sus objetivos a través de la innovación tecnológica.</p>",
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			Name:         "projects",
			Title:        "Nuestros Proyectos",
			Subtitle:     "Explora algunos de nuestros trabajos más destacados",
			Content:      "Cada proyecto es único y refleja nuestro compromiso con la excelencia y la innovación.",
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			Name:         "services",
			Title:        "Qué Hacemos",
			Subtitle:     "Servicios especializados para impulsar tu negocio",
			Content:      "Ofrecemos una gama completa de servicios tecnológicos adaptados a las necesidades específicas de cada cliente.",
			DisplayOrder: 4,
			IsActive:     true,
		},
		{
			Name:         "team",
			Title:        "Nuestro Equipo",
			Subtitle:     "Conoce a las personas detrás de S2dio",
			Content:      "Un grupo diverso de profesionales unidos por la pasión por la tecnología y la innovación.",
			DisplayOrder: 5,
			IsActive:     true,
		},
		{
			Name:         "gif",
			Title:        "GIF del Día",
			Subtitle:     "Un toque de diversión para alegrar tu día",
			Content:      "Porque el desarrollo también puede ser divertido.",
			DisplayOrder: 6,
			IsActive:     true,
		},
	}
}

func sampleProjects() []*entities.Project {
	return []*entities.Project{
		{
			Title:           "E-commerce Moderno",
			Description:     "Plataforma de comercio electrónico con React y Node.js",
			LongDescription: "Una solución completa de e-commerce con carrito de compras, pagos seguros y panel de administración.",
			Technologies:    []string{"React", "Node.js", "MongoDB", "Stripe"},
			GithubURL:       "https://github.com/s2dio/ecommerce",
			LiveURL:         "https://demo-ecommerce.s2dio.com",
			DisplayOrder:    1,
			IsActive:        true,
		},
		{
			Title:           "App de Gestión",
			Description:     "Aplicación web para gestión empresarial",
			LongDescription: "Sistema integral de gestión con módulos de inventario, ventas y reportes.",
			Technologies:    []string{"Next.js", "TypeScript", "PostgreSQL", "Prisma"},
			GithubURL:       "https://github.com/s2dio/management-app",
			LiveURL:         "https://demo-management.s2dio.com",
			DisplayOrder:    2,
			IsActive:        true,
		},
		{
			Title:           "Portfolio Creativo",
			Description:     "Sitio web portfolio con animaciones avanzadas",
			LongDescription: "Portfolio interactivo con animaciones 3D y efectos visuales impresionantes.",
			Technologies:    []string{"Three.js", "GSAP", "Vue.js", "Nuxt.js"},
			GithubURL:       "https://github.com/s2dio/creative-portfolio",
			LiveURL:         "https://demo-portfolio.s2dio.com",
			DisplayOrder:    3,
			IsActive:        true,
		},
		{
			Title:           "Dashboard Analítico",
			Description:     "Panel de control con métricas en tiempo real",
			LongDescription: "Dashboard avanzado con visualizaciones de datos y métricas empresariales.",
			Technologies:    []string{"React", "D3.js", "Python", "FastAPI"},
			GithubURL:       "https://github.com/s2dio/analytics-dashboard",
			LiveURL:         "https://demo-analytics.s2dio.com",
			DisplayOrder:    4,
			IsActive:        true,
		},
		{
			Title:           "App Móvil Fitness",
			Description:     "Aplicación móvil para seguimiento de ejercicios",
			LongDescription: "App nativa con seguimiento de rutinas, métricas de progreso y gamificación.",
			Technologies:    []string{"React Native", "Firebase", "Redux", "Node.js"},
			GithubURL:       "https://github.com/s2dio/fitness-app",
			LiveURL:         "https://demo-fitness.s2dio.com",
			DisplayOrder:    5,
			IsActive:        true,
		},
		{
			Title:           "Plataforma Educativa",
			Description:     "Sistema de gestión de aprendizaje online",
			LongDescription: "LMS completo con cursos, evaluaciones y seguimiento de progreso.",
			Technologies:    []string{"Laravel", "Vue.js", "MySQL", "Redis"},
			GithubURL:       "https://github.com/s2dio/education-platform",
			LiveURL:         "https://demo-education.s2dio.com",
			DisplayOrder:    6,
			IsActive:        true,
		},
	}
}

func sampleServices() []*entities.Service {
	return []*entities.Service{
		{
			Title:        "Desarrollo Web",
			Description:  "Creamos sitios web modernos, responsivos y optimizados para SEO que convierten visitantes en clientes.",
			Icon:         "globe",
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			Title:        "Aplicaciones Móviles",
			Description:  "Desarrollamos apps nativas e híbridas para iOS y Android con experiencias de usuario excepcionales.",
			Icon:         "smartphone",
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			Title:        "Desarrollo Backend",
			Description:  "APIs robustas y escalables con las mejores prácticas de seguridad y rendimiento.",
			Icon:         "database",
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			Title:        "UI/UX Design",
			Description:  "Diseños intuitivos y atractivos que mejoran la experiencia del usuario y aumentan las conversiones.",
			Icon:         "palette",
			DisplayOrder: 4,
			IsActive:     true,
		},
		{
			Title:        "Consultoría Tech",
			Description:  "Asesoramiento estratégico para optimizar procesos y adoptar las mejores tecnologías.",
			Icon:         "zap",
			DisplayOrder: 5,
			IsActive:     true,
		},
		{
			Title:        "Desarrollo Custom",
			Description:  "Soluciones a medida que se adaptan perfectamente a las necesidades específicas de tu negocio.",
			Icon:         "code",
			DisplayOrder: 6,
			IsActive:     true,
		},
	}
}

func sampleTeam() []*entities.TeamMember {
	return []*entities.TeamMember{
		{
			Name:         "Alex Rivera",
			Role:         "Full Stack Developer",
			Bio:          "Especialista en React y Node.js con 5+ años de experiencia en desarrollo web.",
			GithubURL:    "https://github.com/alexrivera",
			LinkedInURL:  "https://linkedin.com/in/alexrivera",
			Email:        "alex@s2dio.com",
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			Name:         "Sofia Chen",
			Role:         "UI/UX Designer",
			Bio:          "Diseñadora creativa apasionada por crear experiencias digitales memorables.",
			GithubURL:    "https://github.com/sofiachen",
			LinkedInURL:  "https://linkedin.com/in/sofiachen",
			Email:        "sofia@s2dio.com",
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			Name:         "Mario Gonzalez",
			Role:         "Backend Developer",
			Bio:          "Experto en arquitecturas escalables y optimización de bases de datos.",
			GithubURL:    "https://github.com/mariogonzalez",
			LinkedInURL:  "https://linkedin.com/in/mariogonzalez",
			Email:        "mario@s2dio.com",
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			Name:         "Luna Torres",
			Role:         "Project Manager",
			Bio:          "Coordinadora de proyectos con enfoque en metodologías ágiles y entrega de calidad.",
			LinkedInURL:  "https://linkedin.com/in/lunatorres",
			Email:        "luna@s2dio.com",
			DisplayOrder: 4,
			IsActive:     true,
		},
		{
			Name:         "Diego Morales",
			Role:         "DevOps Engineer",
			Bio:          "Especialista en infraestructura cloud y automatización de despliegues.",
			GithubURL:    "https://github.com/diegomorales",
			LinkedInURL:  "https://linkedin.com/in/diegomorales",
			Email:        "diego@s2dio.com",
			DisplayOrder: 5,
			IsActive:     true,
		},
		{
			Name:         "Carmen Ruiz",
			Role:         "QA Engineer",
			Bio:          "Especialista en testing automatizado y aseguramiento de calidad.",
			GithubURL:    "https://github.com/carmenruiz",
			LinkedInURL:  "https://linkedin.com/in/carmenruiz",
			Email:        "carmen@s2dio.com",
			DisplayOrder: 6,
			IsActive:     true,
		},
	}
}
