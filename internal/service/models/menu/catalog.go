package menu

var catalog = []Category{
	{
		ID:   "entradas",
		Name: "Entradas",
		Items: []MenuItem{
			{
				ID:          1,
				Name:        "Bruschetta Artesanal",
				Description: "Pão italiano tostado com tomates frescos, manjericão, alho e azeite extra virgem",
				Price:       "R$ 28,00",
				Image:       "https://images.unsplash.com/photo-1572695157366-5e585ab2b69f?w=400&h=300&fit=crop",
				Rating:      4.8,
				PrepTime:    "10 min",
				Ingredients: []string{"Pão italiano", "Tomates frescos", "Manjericão", "Alho", "Azeite extra virgem"},
				Extras: []Extra{
					{Name: "Queijo brie", PriceCents: 800},
					{Name: "Presunto parma", PriceCents: 1200},
					{Name: "Rúcula", PriceCents: 400},
				},
			},
			{
				ID:          2,
				Name:        "Carpaccio de Salmão",
				Description: "Fatias finas de salmão fresco com alcaparras, rúcula e molho de mostarda e mel",
				Price:       "R$ 42,00",
				Image:       "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop",
				Rating:      4.9,
				PrepTime:    "15 min",
				Ingredients: []string{"Salmão fresco", "Alcaparras", "Rúcula", "Molho de mostarda e mel"},
				Extras: []Extra{
					{Name: "Cream cheese", PriceCents: 600},
					{Name: "Torrada extra", PriceCents: 500},
					{Name: "Limão siciliano", PriceCents: 300},
				},
			},
			{
				ID:          3,
				Name:        "Coxinha Gourmet de Camarão",
				Description: "Coxinha artesanal recheada com camarão ao catupiry e ervas finas",
				Price:       "R$ 35,00",
				Image:       "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?w=400&h=300&fit=crop",
				Rating:      4.7,
				PrepTime:    "12 min",
				Ingredients: []string{"Massa de mandioca", "Camarão", "Catupiry", "Ervas finas"},
				Extras: []Extra{
					{Name: "Molho picante", PriceCents: 300},
					{Name: "Coxinha extra", PriceCents: 1500},
					{Name: "Molho tártaro", PriceCents: 400},
				},
			},
		},
	},
	{
		ID:   "principais",
		Name: "Pratos Principais",
		Items: []MenuItem{
			{
				ID:          4,
				Name:        "Salmão Grelhado com Quinoa",
				Description: "Filé de salmão grelhado acompanhado de quinoa tricolor, legumes salteados e molho de ervas",
				Price:       "R$ 68,00",
				Image:       "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400&h=300&fit=crop",
				Rating:      4.9,
				PrepTime:    "25 min",
				Ingredients: []string{"Filé de salmão", "Quinoa tricolor", "Legumes salteados", "Molho de ervas"},
				Extras: []Extra{
					{Name: "Batata rústica", PriceCents: 800},
					{Name: "Aspargos grelhados", PriceCents: 1200},
					{Name: "Molho hollandaise", PriceCents: 600},
				},
			},
			{
				ID:          5,
				Name:        "Risotto de Cogumelos Selvagens",
				Description: "Arroz arbóreo cremoso com mix de cogumelos, parmesão envelhecido e trufa negra",
				Price:       "R$ 58,00",
				Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?w=400&h=300&fit=crop",
				Rating:      4.8,
				PrepTime:    "30 min",
				Ingredients: []string{"Arroz arbóreo", "Mix de cogumelos", "Parmesão envelhecido", "Trufa negra"},
				Extras: []Extra{
					{Name: "Cogumelos extras", PriceCents: 1000},
					{Name: "Parmesão extra", PriceCents: 800},
					{Name: "Vinho branco", PriceCents: 1500},
				},
			},
			{
				ID:          6,
				Name:        "Picanha Premium na Brasa",
				Description: "Picanha argentina grelhada na brasa, acompanha batatas rústicas e vinagrete especial",
				Price:       "R$ 89,00",
				Image:       "https://images.unsplash.com/photo-1558030006-450675393462?w=400&h=300&fit=crop",
				Rating:      4.9,
				PrepTime:    "35 min",
				Ingredients: []string{"Picanha argentina", "Batatas rústicas", "Vinagrete especial", "Sal grosso"},
				Extras: []Extra{
					{Name: "Farofa especial", PriceCents: 800},
					{Name: "Queijo coalho", PriceCents: 1200},
					{Name: "Molho chimichurri", PriceCents: 600},
				},
			},
		},
	},
	{
		ID:   "sobremesas",
		Name: "Sobremesas",
		Items: []MenuItem{
			{
				ID:          8,
				Name:        "Tiramisù da Casa",
				Description: "Clássico italiano com café espresso, mascarpone, cacau e biscoitos savoiardi",
				Price:       "R$ 32,00",
				Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=400&h=300&fit=crop",
				Rating:      4.8,
				PrepTime:    "5 min",
				Ingredients: []string{"Café espresso", "Mascarpone", "Cacau", "Biscoitos savoiardi"},
				Extras: []Extra{
					{Name: "Sorvete de baunilha", PriceCents: 800},
					{Name: "Calda de chocolate", PriceCents: 500},
					{Name: "Chantilly", PriceCents: 400},
				},
			},
			{
				ID:          9,
				Name:        "Petit Gâteau de Chocolate Belga",
				Description: "Bolinho quente de chocolate com centro cremoso, acompanha sorvete de baunilha",
				Price:       "R$ 28,00",
				Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400&h=300&fit=crop",
				Rating:      4.9,
				PrepTime:    "15 min",
				Ingredients: []string{"Chocolate belga", "Farinha", "Ovos", "Sorvete de baunilha"},
				Extras: []Extra{
					{Name: "Sorvete extra", PriceCents: 600},
					{Name: "Calda de frutas vermelhas", PriceCents: 500},
					{Name: "Castanhas", PriceCents: 400},
				},
			},
			{
				ID:          10,
				Name:        "Cheesecake de Frutas Vermelhas",
				Description: "Cheesecake cremoso com calda de frutas vermelhas e base de biscoito graham",
				Price:       "R$ 26,00",
				Image:       "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?w=400&h=300&fit=crop",
				Rating:      4.7,
				PrepTime:    "5 min",
				Ingredients: []string{"Cream cheese", "Frutas vermelhas", "Biscoito graham", "Açúcar"},
				Extras: []Extra{
					{Name: "Frutas frescas extras", PriceCents: 600},
					{Name: "Chantilly", PriceCents: 400},
					{Name: "Calda extra", PriceCents: 300},
				},
			},
		},
	},
	{
		ID:   "bebidas",
		Name: "Bebidas",
		Items: []MenuItem{
			{
				ID:          11,
				Name:        "Vinho Tinto Reserva",
				Description: "Cabernet Sauvignon argentino, corpo médio com notas de frutas vermelhas",
				Price:       "R$ 45,00",
				Image:       "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=400&h=300&fit=crop",
				Rating:      4.8,
				PrepTime:    "Imediato",
				Ingredients: []string{"Cabernet Sauvignon"},
				Extras: []Extra{
					{Name: "Taça extra", PriceCents: 4500},
					{Name: "Queijos especiais", PriceCents: 2500},
					{Name: "Tábua de frios", PriceCents: 3500},
				},
			},
			{
				ID:          12,
				Name:        "Caipirinha Premium",
				Description: "Cachaça artesanal com limão tahiti, açúcar demerara e gelo cristal",
				Price:       "R$ 22,00",
				Image:       "https://images.unsplash.com/photo-1551538827-9c037cb4f32a?w=400&h=300&fit=crop",
				Rating:      4.6,
				PrepTime:    "3 min",
				Ingredients: []string{"Cachaça artesanal", "Limão tahiti", "Açúcar demerara", "Gelo cristal"},
				Extras: []Extra{
					{Name: "Dose dupla", PriceCents: 1200},
					{Name: "Frutas variadas", PriceCents: 600},
					{Name: "Caipirinha extra", PriceCents: 2200},
				},
			},
			{
				ID:          13,
				Name:        "Suco Natural Detox",
				Description: "Couve, maçã verde, gengibre, limão e hortelã - rico em vitaminas",
				Price:       "R$ 18,00",
				Image:       "https://images.unsplash.com/photo-1622597467836-f3285f2131b8?w=400&h=300&fit=crop",
				Rating:      4.5,
				PrepTime:    "5 min",
				Ingredients: []string{"Couve", "Maçã verde", "Gengibre", "Limão", "Hortelã"},
				Extras: []Extra{
					{Name: "Chia", PriceCents: 400},
					{Name: "Proteína whey", PriceCents: 800},
					{Name: "Copo extra", PriceCents: 1800},
				},
			},
		},
	},
}
