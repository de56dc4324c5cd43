package vehicle

var vehicles = []model{
	{"Toyota", "Corolla", "Sedan", 1995, 2024},
	{"Toyota", "RAV4", "SUV", 1996, 2024},
	{"Toyota", "Tacoma", "Pickup", 1995, 2024},
	{"Honda", "Civic", "Sedan", 1995, 2024},
	{"Honda", "Accord", "Sedan", 1995, 2024},
	{"Honda", "CR-V", "SUV", 1997, 2024},
	{"Ford", "F-150", "Pickup", 1995, 2024},
	{"Ford", "Mustang", "Coupe", 1995, 2024},
	{"Ford", "Escape", "SUV", 2001, 2024},
	{"Chevrolet", "Silverado", "Pickup", 1999, 2024},
	{"Chevrolet", "Malibu", "Sedan", 1997, 2024},
	{"Chevrolet", "Equinox", "SUV", 2005, 2024},
	{"Volkswagen", "Golf", "Hatchback", 1995, 2024},
	{"Volkswagen", "Passat", "Wagon", 1995, 2022},
	{"BMW", "3 Series", "Sedan", 1995, 2024},
	{"BMW", "X5", "SUV", 2000, 2024},
	{"Mercedes-Benz", "C-Class", "Sedan", 1995, 2024},
	{"Audi", "A4", "Sedan", 1996, 2024},
	{"Renault", "Clio", "Hatchback", 1995, 2024},
	{"Peugeot", "308", "Hatchback", 2007, 2024},
	{"Fiat", "500", "Hatchback", 2007, 2024},
	{"Subaru", "Outback", "Wagon", 1995, 2024},
	{"Tesla", "Model 3", "Sedan", 2017, 2024},
	{"Nissan", "Leaf", "Hatchback", 2011, 2024},
	{"Mazda", "MX-5 Miata", "Convertible", 1995, 2024},
	{"Dodge", "Grand Caravan", "Van/Minivan", 1995, 2020},
}

var machines = []model{
	{"Caterpillar", "320", "Excavator", 1992, 2024},
	{"Caterpillar", "D6", "Dozer", 1995, 2024},
	{"Komatsu", "PC210", "Excavator", 1995, 2024},
	{"John Deere", "5075E", "Tractor", 2006, 2024},
	{"John Deere", "S780", "Combine", 2018, 2024},
	{"Case IH", "Magnum 340", "Tractor", 2010, 2024},
	{"New Holland", "T7.270", "Tractor", 2011, 2024},
	{"Kubota", "KX040", "Mini Excavator", 2008, 2024},
	{"Bobcat", "S650", "Skid Steer", 2012, 2024},
	{"Volvo", "L120H", "Wheel Loader", 2015, 2024},
	{"JCB", "3CX", "Backhoe Loader", 1995, 2024},
	{"Liebherr", "LTM 1100", "Crane", 2005, 2024},
}
