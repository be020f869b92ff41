package catalog

func p(name, location, coords, description string) Place {
	return Place{Name: name, Location: location, Coordinates: coords, Description: description}
}

func r(name, location, cuisine, speciality string) Restaurant {
	return Restaurant{
		Name:       name,
		Location:   location,
		Cuisine:    cuisine,
		Speciality: speciality,
		MapLink:    mapLink(name + " " + location),
	}
}

func n(label, venue, area string) NightlifeOption {
	return NightlifeOption{Label: label, Venue: venue, Area: area}
}

func builtinCities() []*City {
	return []*City{paris(), london(), tokyo(), newYork(), dubai(), goa(), jaipur()}
}

func paris() *City {
	return &City{
		Key:  "paris",
		Name: "Paris",
		Places: map[Category][]Place{
			Historic: {
				p("Notre-Dame Cathedral", "Île de la Cité", "48.8530,2.3499", "Gothic cathedral on the Seine, reopened after restoration."),
				p("Arc de Triomphe", "Place Charles de Gaulle", "48.8738,2.2950", "Napoleonic arch with a rooftop view down the Champs-Élysées."),
				p("Sainte-Chapelle", "Île de la Cité", "48.8554,2.3450", "Royal chapel famous for its 13th-century stained glass."),
				p("Les Invalides", "7th Arrondissement", "48.8550,2.3125", "Military museum and Napoleon's tomb."),
			},
			Cultural: {
				p("Louvre Museum", "1st Arrondissement", "48.8606,2.3376", "The world's most visited museum, home of the Mona Lisa."),
				p("Musée d'Orsay", "7th Arrondissement", "48.8600,2.3266", "Impressionist masterpieces in a Beaux-Arts railway station."),
				p("Centre Pompidou", "Beaubourg", "48.8607,2.3522", "Modern and contemporary art behind an inside-out facade."),
				p("Montmartre & Sacré-Cœur", "18th Arrondissement", "48.8867,2.3431", "Artists' hill crowned by a white basilica."),
			},
			Shopping: {
				p("Galeries Lafayette", "Boulevard Haussmann", "48.8738,2.3320", "Grand department store under a stained-glass dome."),
				p("Le Marais Boutiques", "Le Marais", "48.8590,2.3620", "Independent designers and vintage stores in medieval lanes."),
				p("Champs-Élysées", "8th Arrondissement", "48.8698,2.3078", "The city's flagship shopping avenue."),
			},
			Nature: {
				p("Luxembourg Gardens", "6th Arrondissement", "48.8462,2.3372", "Formal gardens with fountains and the Senate palace."),
				p("Seine River Cruise", "Port de la Bourdonnais", "48.8599,2.2930", "Hour-long boat ride past the city's landmarks."),
				p("Bois de Vincennes", "12th Arrondissement", "48.8283,2.4330", "Lakes, rowing boats and a botanical park on the east side."),
			},
			Entertainment: {
				p("Eiffel Tower", "Champ de Mars", "48.8584,2.2945", "Iron landmark with summit views over the city."),
				p("Moulin Rouge", "Pigalle", "48.8841,2.3323", "Historic cabaret and home of the can-can."),
				p("Disneyland Paris", "Marne-la-Vallée", "48.8722,2.7758", "Two theme parks a short RER ride from the centre."),
			},
		},
		Lunch: map[Category][]Restaurant{
			Historic:      {r("Café Panis", "Quai de Montebello", "French bistro", "Croque-monsieur facing Notre-Dame"), r("Le Relais de l'Entrecôte", "Saint-Germain", "Steakhouse", "Steak-frites with secret sauce")},
			Cultural:      {r("Café Marly", "Louvre, Cour Napoléon", "French", "Lunch under the Louvre arcades"), r("Le Consulat", "Montmartre", "French bistro", "Onion soup and duck confit")},
			Shopping:      {r("L'As du Fallafel", "Le Marais", "Middle Eastern", "Falafel pita"), r("Angelina", "Rue de Rivoli", "Tea room", "Mont-Blanc and hot chocolate")},
			Nature:        {r("Le Pavillon de la Fontaine", "Luxembourg Gardens", "Café", "Quiche and salads in the park")},
			Entertainment: {r("Les Ombres", "Quai Branly", "Modern French", "Terrace lunch beside the Eiffel Tower")},
		},
		Dinner: []Restaurant{
			r("Le Comptoir du Relais", "Saint-Germain", "French", "Classic bistro plates"),
			r("Bouillon Chartier", "Grands Boulevards", "Traditional French", "Escargots in a Belle Époque hall"),
			r("Septime", "11th Arrondissement", "Modern French", "Seasonal tasting menu"),
			r("Chez Janou", "Le Marais", "Provençal", "Chocolate mousse served from the bowl"),
		},
		Nightlife: map[Companion][]NightlifeOption{
			Friends: {
				n("🎶 Live jazz", "Caveau de la Huchette", "Latin Quarter"),
				n("🍸 Cocktail bar", "Le Mary Celeste", "Le Marais"),
				n("🕺 Clubbing", "Rex Club", "Grands Boulevards"),
			},
			Couple: {
				n("🍷 Wine bar", "Le Baron Rouge", "Aligre"),
				n("🌃 Night cruise", "Bateaux Parisiens", "Port de la Bourdonnais"),
				n("🎭 Cabaret", "Moulin Rouge", "Pigalle"),
			},
			Solo: {
				n("🎷 Jazz club", "Sunset-Sunside", "Châtelet"),
				n("📚 Late bookshop", "Shakespeare and Company", "Latin Quarter"),
			},
		},
	}
}

func london() *City {
	return &City{
		Key:  "london",
		Name: "London",
		Places: map[Category][]Place{
			Historic: {
				p("Tower of London", "Tower Hill", "51.5081,-0.0759", "Norman fortress guarding the Crown Jewels."),
				p("Westminster Abbey", "Westminster", "51.4993,-0.1273", "Coronation church since 1066."),
				p("Houses of Parliament", "Westminster", "51.4995,-0.1248", "Gothic Revival seat of Parliament and Big Ben."),
				p("St Paul's Cathedral", "City of London", "51.5138,-0.0984", "Wren's domed cathedral with the Whispering Gallery."),
			},
			Cultural: {
				p("British Museum", "Bloomsbury", "51.5194,-0.1270", "Two million years of human history, free entry."),
				p("Tate Modern", "Bankside", "51.5076,-0.0994", "Modern art in a former power station."),
				p("National Gallery", "Trafalgar Square", "51.5089,-0.1283", "Western European painting from the 13th century on."),
			},
			Shopping: {
				p("Covent Garden", "Covent Garden", "51.5117,-0.1240", "Market halls, street performers and boutiques."),
				p("Oxford Street", "West End", "51.5152,-0.1419", "Europe's busiest shopping street."),
				p("Borough Market", "Southwark", "51.5055,-0.0910", "Historic food market under the railway arches."),
			},
			Nature: {
				p("Hyde Park", "Westminster", "51.5073,-0.1657", "Royal park with the Serpentine lake."),
				p("Kew Gardens", "Richmond", "51.4787,-0.2956", "Botanic gardens and Victorian glasshouses."),
				p("Hampstead Heath", "Hampstead", "51.5608,-0.1631", "Wild heathland with the Parliament Hill view."),
			},
			Entertainment: {
				p("London Eye", "South Bank", "51.5033,-0.1196", "Observation wheel on the Thames."),
				p("West End Theatre", "Shaftesbury Avenue", "51.5115,-0.1317", "Musicals and plays in Theatreland."),
				p("Camden Market", "Camden Town", "51.5415,-0.1460", "Street food, music and alternative stalls."),
			},
		},
		Lunch: map[Category][]Restaurant{
			Historic:      {r("The Ivy Tower Bridge", "Tower Bridge", "British", "Shepherd's pie with a river view")},
			Cultural:      {r("Dishoom", "Covent Garden", "Indian", "Bacon naan roll and chai"), r("Tate Modern Restaurant", "Bankside", "Modern British", "View over St Paul's")},
			Shopping:      {r("Kappacasein", "Borough Market", "Street food", "Raclette toastie")},
			Nature:        {r("The Orangery", "Kensington Gardens", "Tea room", "Afternoon tea")},
			Entertainment: {r("Flat Iron", "Covent Garden", "Steakhouse", "Flat iron steak")},
		},
		Dinner: []Restaurant{
			r("Rules", "Covent Garden", "Traditional British", "Game pie in London's oldest restaurant"),
			r("Hawksmoor", "Seven Dials", "Steakhouse", "Dry-aged steaks"),
			r("Padella", "Borough Market", "Italian", "Hand-rolled pici cacio e pepe"),
		},
		Nightlife: map[Companion][]NightlifeOption{
			Friends: {
				n("🍻 Pub crawl", "The Churchill Arms", "Kensington"),
				n("🕺 Clubbing", "Fabric", "Farringdon"),
			},
			Couple: {
				n("🍸 Rooftop cocktails", "Aqua Shard", "London Bridge"),
				n("🎭 Theatre night", "Royal Opera House", "Covent Garden"),
			},
			Solo: {
				n("🎷 Jazz club", "Ronnie Scott's", "Soho"),
				n("🎤 Comedy night", "The Comedy Store", "Leicester Square"),
			},
		},
	}
}

func tokyo() *City {
	return &City{
		Key:  "tokyo",
		Name: "Tokyo",
		Places: map[Category][]Place{
			Historic: {
				p("Senso-ji Temple", "Asakusa", "35.7148,139.7967", "Tokyo's oldest temple and the Nakamise arcade."),
				p("Meiji Shrine", "Shibuya", "35.6764,139.6993", "Shinto shrine in a forested park."),
				p("Imperial Palace East Gardens", "Chiyoda", "35.6852,139.7528", "Remains of Edo Castle."),
			},
			Cultural: {
				p("Tokyo National Museum", "Ueno Park", "35.7188,139.7765", "Japan's largest collection of national treasures."),
				p("teamLab Planets", "Toyosu", "35.6491,139.7898", "Immersive digital art installations."),
				p("Ghibli Museum", "Mitaka", "35.6962,139.5704", "Studio Ghibli's whimsical museum."),
			},
			Shopping: {
				p("Shibuya Crossing & 109", "Shibuya", "35.6595,139.7005", "The famous scramble and youth fashion."),
				p("Ginza", "Chuo", "35.6717,139.7650", "Flagship department stores and luxury brands."),
				p("Akihabara", "Chiyoda", "35.7023,139.7745", "Electronics, anime and game shops."),
			},
			Nature: {
				p("Shinjuku Gyoen", "Shinjuku", "35.6852,139.7100", "Landscaped garden famous for cherry blossoms."),
				p("Ueno Park", "Taito", "35.7156,139.7745", "Park with ponds, museums and a zoo."),
			},
			Entertainment: {
				p("Tokyo Skytree", "Sumida", "35.7101,139.8107", "The tallest tower in Japan."),
				p("Robot Restaurant District", "Kabukicho", "35.6944,139.7030", "Neon-lit entertainment quarter."),
				p("Tokyo DisneySea", "Urayasu", "35.6267,139.8851", "Nautical-themed Disney park."),
			},
		},
		Lunch: map[Category][]Restaurant{
			Historic:      {r("Asakusa Imahan", "Asakusa", "Japanese", "Sukiyaki lunch set")},
			Cultural:      {r("Ueno Yabu Soba", "Ueno", "Japanese", "Cold soba noodles")},
			Shopping:      {r("Ichiran Shibuya", "Shibuya", "Ramen", "Tonkotsu ramen in solo booths")},
			Nature:        {r("Shinjuku Gyoen Café", "Shinjuku Gyoen", "Café", "Matcha and wagashi")},
			Entertainment: {r("Sushi Zanmai", "Tsukiji", "Sushi", "Fresh tuna nigiri")},
		},
		Dinner: []Restaurant{
			r("Gonpachi Nishi-Azabu", "Nishi-Azabu", "Izakaya", "Yakitori and soba"),
			r("Uobei", "Shibuya", "Conveyor sushi", "Bullet-train sushi delivery"),
			r("Omoide Yokocho", "Shinjuku", "Yakitori alley", "Skewers in tiny smoky bars"),
		},
		Nightlife: map[Companion][]NightlifeOption{
			Friends: {
				n("🎤 Karaoke", "Karaoke Kan", "Shibuya"),
				n("🍶 Bar hopping", "Golden Gai", "Shinjuku"),
			},
			Couple: {
				n("🌃 Night view", "Shibuya Sky", "Shibuya"),
				n("🍸 Hotel bar", "New York Bar, Park Hyatt", "Shinjuku"),
			},
			Solo: {
				n("🍶 Standing bar", "Omoide Yokocho", "Shinjuku"),
				n("🎮 Arcade night", "Taito Station", "Akihabara"),
			},
		},
	}
}

func newYork() *City {
	return &City{
		Key:  "new york",
		Name: "New York",
		Places: map[Category][]Place{
			Historic: {
				p("Statue of Liberty", "Liberty Island", "40.6892,-74.0445", "Ferry to the copper icon and Ellis Island."),
				p("9/11 Memorial", "Lower Manhattan", "40.7115,-74.0134", "Memorial pools on the Twin Towers footprints."),
				p("Brooklyn Bridge", "Lower Manhattan", "40.7061,-73.9969", "Walk the 1883 suspension bridge."),
			},
			Cultural: {
				p("Metropolitan Museum of Art", "Upper East Side", "40.7794,-73.9632", "5,000 years of art on Fifth Avenue."),
				p("MoMA", "Midtown", "40.7614,-73.9776", "Modern art from Van Gogh to Warhol."),
				p("Guggenheim Museum", "Upper East Side", "40.7830,-73.9590", "Frank Lloyd Wright's spiral gallery."),
			},
			Shopping: {
				p("Fifth Avenue", "Midtown", "40.7580,-73.9750", "Flagship stores from Saks to Tiffany."),
				p("SoHo", "SoHo", "40.7233,-74.0030", "Boutiques in cast-iron buildings."),
				p("Chelsea Market", "Chelsea", "40.7424,-74.0060", "Food hall in a former biscuit factory."),
			},
			Nature: {
				p("Central Park", "Manhattan", "40.7829,-73.9654", "843 acres of lawns, lakes and bridges."),
				p("The High Line", "Chelsea", "40.7480,-74.0048", "Elevated park on an old rail line."),
			},
			Entertainment: {
				p("Times Square", "Midtown", "40.7580,-73.9855", "Neon crossroads of the world."),
				p("Broadway Show", "Theater District", "40.7590,-73.9845", "A musical on the Great White Way."),
				p("Top of the Rock", "Rockefeller Center", "40.7593,-73.9794", "Observation deck facing the Empire State."),
			},
		},
		Lunch: map[Category][]Restaurant{
			Historic:      {r("Joe's Pizza", "Greenwich Village", "Pizza", "Classic New York slice")},
			Cultural:      {r("Levain Bakery", "Upper West Side", "Bakery", "Giant chocolate chip cookie")},
			Shopping:      {r("Los Tacos No. 1", "Chelsea Market", "Mexican", "Adobada tacos")},
			Nature:        {r("Tavern on the Green", "Central Park", "American", "Brunch in the park")},
			Entertainment: {r("Katz's Delicatessen", "Lower East Side", "Deli", "Pastrami on rye")},
		},
		Dinner: []Restaurant{
			r("Peter Luger", "Williamsburg", "Steakhouse", "Porterhouse for two"),
			r("Carbone", "Greenwich Village", "Italian-American", "Spicy rigatoni vodka"),
			r("Xi'an Famous Foods", "Chinatown", "Chinese", "Hand-ripped noodles"),
		},
		Nightlife: map[Companion][]NightlifeOption{
			Friends: {
				n("🍸 Speakeasy", "Please Don't Tell", "East Village"),
				n("🎶 Live music", "Brooklyn Bowl", "Williamsburg"),
			},
			Couple: {
				n("🌃 Rooftop bar", "230 Fifth", "Flatiron"),
				n("🎷 Jazz night", "Blue Note", "Greenwich Village"),
			},
			Solo: {
				n("🎤 Comedy club", "Comedy Cellar", "Greenwich Village"),
				n("🍺 Craft beer bar", "Proletariat", "East Village"),
			},
		},
	}
}

func dubai() *City {
	return &City{
		Key:  "dubai",
		Name: "Dubai",
		Places: map[Category][]Place{
			Historic: {
				p("Al Fahidi Historical District", "Bur Dubai", "25.2637,55.2972", "Wind-tower houses and the Dubai Museum."),
				p("Dubai Creek & Abra Ride", "Deira", "25.2654,55.2962", "Cross the creek on a traditional boat."),
			},
			Cultural: {
				p("Museum of the Future", "Sheikh Zayed Road", "25.2192,55.2818", "Speculative design inside a calligraphy torus."),
				p("Jumeirah Mosque", "Jumeirah", "25.2338,55.2654", "Guided tours of the city's landmark mosque."),
				p("Alserkal Avenue", "Al Quoz", "25.1425,55.2259", "Galleries in converted warehouses."),
			},
			Shopping: {
				p("The Dubai Mall", "Downtown", "25.1975,55.2796", "Over 1,200 stores and an aquarium."),
				p("Gold Souk", "Deira", "25.2697,55.2963", "Traditional gold and jewellery market."),
				p("Mall of the Emirates", "Al Barsha", "25.1181,55.2006", "Home of the indoor ski slope."),
			},
			Nature: {
				p("Desert Safari", "Lahbab Desert", "24.9700,55.5800", "Dune bashing and a Bedouin-style camp."),
				p("Dubai Miracle Garden", "Al Barsha South", "25.0600,55.2440", "Flower sculptures in the desert."),
			},
			Entertainment: {
				p("Burj Khalifa At the Top", "Downtown", "25.1972,55.2744", "Observation deck on the world's tallest building."),
				p("Dubai Fountain Show", "Downtown", "25.1950,55.2750", "Choreographed fountains at dusk."),
				p("Atlantis Aquaventure", "Palm Jumeirah", "25.1304,55.1171", "Waterpark on the Palm."),
			},
		},
		Lunch: map[Category][]Restaurant{
			Historic:      {r("Arabian Tea House", "Al Fahidi", "Emirati", "Chicken machboos")},
			Cultural:      {r("Al Fanar", "Festival City", "Emirati", "Lamb ouzi")},
			Shopping:      {r("Ravi Restaurant", "Satwa", "Pakistani", "Mutton karahi")},
			Nature:        {r("Desert Camp Barbecue", "Lahbab Desert", "Barbecue", "Grilled meats under the stars")},
			Entertainment: {r("Al Hallab", "Dubai Mall", "Lebanese", "Mezze platter")},
		},
		Dinner: []Restaurant{
			r("Pierchic", "Al Qasr", "Seafood", "Dinner on a pier over the Gulf"),
			r("Al Ustad Special Kebab", "Al Fahidi", "Iranian", "Chelo kebab"),
			r("Zuma", "DIFC", "Japanese izakaya", "Black cod"),
		},
		Nightlife: map[Companion][]NightlifeOption{
			Friends: {
				n("🏖️ Beach club", "White Beach", "Palm Jumeirah"),
				n("🕺 Clubbing", "WHITE Dubai", "Meydan"),
			},
			Couple: {
				n("🌃 Sky bar", "CÉ LA VI", "Downtown"),
				n("🛥️ Dhow dinner cruise", "Dubai Marina Dhow", "Dubai Marina"),
			},
			Solo: {
				n("🌙 Marina walk", "Dubai Marina Walk", "Dubai Marina"),
				n("☕ Shisha café", "Al Seef Shisha Terrace", "Al Seef"),
			},
		},
	}
}

func goa() *City {
	return &City{
		Key:  "goa",
		Name: "Goa",
		Places: map[Category][]Place{
			Historic: {
				p("Basilica of Bom Jesus", "Old Goa", "15.5009,73.9116", "UNESCO church holding St Francis Xavier's relics."),
				p("Fort Aguada", "Candolim", "15.4925,73.7736", "17th-century Portuguese fort and lighthouse."),
				p("Se Cathedral", "Old Goa", "15.5039,73.9123", "One of Asia's largest churches."),
			},
			Cultural: {
				p("Fontainhas Latin Quarter", "Panaji", "15.4989,73.8326", "Colourful Portuguese-era houses."),
				p("Goa Chitra Museum", "Benaulim", "15.2635,73.9294", "Ethnographic museum of rural Goa."),
			},
			Nature: {
				p("Dudhsagar Falls", "Mollem", "15.3144,74.3143", "Four-tiered waterfall in the Western Ghats."),
				p("Palolem Beach", "Canacona", "15.0100,74.0232", "Crescent beach with calm water."),
				p("Salim Ali Bird Sanctuary", "Chorao Island", "15.5124,73.8655", "Mangrove birdwatching by canoe."),
				p("Butterfly Beach", "Canacona", "15.0150,73.9990", "Secluded cove reached by boat."),
			},
			Entertainment: {
				p("Anjuna Flea Market", "Anjuna", "15.5736,73.7411", "Wednesday market with music and stalls."),
				p("Baga Beach Water Sports", "Baga", "15.5553,73.7517", "Parasailing and jet skis."),
				p("Deltin Royale Casino", "Panaji", "15.5006,73.8311", "Floating casino on the Mandovi."),
			},
		},
		Lunch: map[Category][]Restaurant{
			Historic:      {r("Viva Panjim", "Panaji", "Goan", "Fish thali")},
			Cultural:      {r("Ritz Classic", "Panaji", "Goan", "Prawn curry rice")},
			Nature:        {r("Dropadi", "Palolem", "Seafood", "Tandoori kingfish")},
			Entertainment: {r("Britto's", "Baga", "Goan & Continental", "Bebinca dessert")},
		},
		Dinner: []Restaurant{
			r("Gunpowder", "Assagao", "South Indian", "Appam and stew"),
			r("Thalassa", "Vagator", "Greek", "Sunset mezze on the cliff"),
			r("Fisherman's Wharf", "Cavelossim", "Goan", "Crab xec xec"),
		},
		Nightlife: map[Companion][]NightlifeOption{
			Friends: {
				n("🕺 Beach party", "Tito's Lane", "Baga"),
				n("🎶 Trance night", "Curlies", "Anjuna"),
			},
			Couple: {
				n("🌅 Sunset drinks", "Thalassa", "Vagator"),
				n("🕯️ Candlelit beach dinner", "La Plage", "Ashwem"),
			},
			Solo: {
				n("🎸 Live music", "Cohiba Bar", "Candolim"),
				n("🌙 Night market", "Arpora Saturday Night Market", "Arpora"),
			},
		},
	}
}

func jaipur() *City {
	return &City{
		Key:  "jaipur",
		Name: "Jaipur",
		Places: map[Category][]Place{
			Historic: {
				p("Amber Fort", "Amer", "26.9855,75.8513", "Hilltop fort of red sandstone and marble."),
				p("Hawa Mahal", "Badi Choupad", "26.9239,75.8267", "Palace of Winds with 953 windows."),
				p("City Palace", "Old City", "26.9258,75.8237", "Royal residence and museum."),
				p("Jantar Mantar", "Old City", "26.9248,75.8246", "UNESCO astronomical instruments."),
				p("Nahargarh Fort", "Aravalli Hills", "26.9373,75.8155", "Fort with sunset views over the Pink City."),
			},
			Cultural: {
				p("Albert Hall Museum", "Ram Niwas Garden", "26.9116,75.8195", "Indo-Saracenic museum of Rajasthani art."),
				p("Jawahar Kala Kendra", "JLN Marg", "26.8920,75.8147", "Arts centre designed by Charles Correa."),
			},
			Shopping: {
				p("Johari Bazaar", "Old City", "26.9196,75.8267", "Gemstones and silver jewellery."),
				p("Bapu Bazaar", "Old City", "26.9160,75.8190", "Textiles, mojari shoes and handicrafts."),
				p("Anokhi Museum of Hand Printing", "Amer", "26.9864,75.8512", "Block-printing workshop and shop."),
			},
			Nature: {
				p("Jal Mahal", "Man Sagar Lake", "26.9535,75.8462", "Water palace floating in the lake."),
				p("Sisodia Rani Garden", "Agra Road", "26.8898,75.8755", "Terraced Mughal garden."),
			},
		},
		Lunch: map[Category][]Restaurant{
			Historic: {r("1135 AD", "Amber Fort", "Rajasthani", "Laal maas in a palace hall")},
			Cultural: {r("Laxmi Misthan Bhandar", "Johari Bazaar", "Vegetarian", "Pyaaz kachori")},
			Shopping: {r("Rawat Mishtan Bhandar", "Sindhi Camp", "Snacks", "Mawa kachori")},
			Nature:   {r("Peacock Rooftop", "Hathroi Fort", "Indian", "Rooftop thali")},
		},
		Dinner: []Restaurant{
			r("Chokhi Dhani", "Tonk Road", "Rajasthani village", "Dal baati churma with folk dance"),
			r("Suvarna Mahal", "Rambagh Palace", "Royal Indian", "Dinner in a palace ballroom"),
			r("Spice Court", "Civil Lines", "Rajasthani", "Jungli maas"),
		},
		Nightlife: map[Companion][]NightlifeOption{
			Friends: {
				n("🍻 Rooftop bar", "Bar Palladio", "Narain Niwas"),
			},
			Couple: {
				n("🌃 Fort dinner", "Nahargarh Padao", "Nahargarh Fort"),
				n("🎭 Folk performance", "Chokhi Dhani", "Tonk Road"),
			},
			Solo: {
				n("🌙 Light and sound show", "Amber Fort", "Amer"),
			},
		},
	}
}
